// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btccipher/cipher"
	"github.com/btcsuite/btccipher/digest"
	"github.com/btcsuite/btccipher/sigcache"
)

// selfTestCmd defines the configuration options for the selftest command.
type selfTestCmd struct {
	Iterations uint64 `short:"n" long:"iterations" default:"100" description:"Number of key pairs to test"`
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *selfTestCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}
	return cmd.run(outWriter, sigcache.New(cfg.SigCacheMaxSize))
}

func (cmd *selfTestCmd) run(w io.Writer, cache *sigcache.SigCache) error {
	if cmd.Iterations == 0 {
		return errors.New("the --iterations option must be positive")
	}

	numWorkers := runtime.NumCPU()
	if uint64(numWorkers) > cmd.Iterations {
		numWorkers = int(cmd.Iterations)
	}
	log.Infof("Running %d self test iterations on %d workers",
		cmd.Iterations, numWorkers)

	var (
		next     uint64
		failed   int32
		firstErr error
		errOnce  sync.Once
		wg       sync.WaitGroup
	)
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for atomic.LoadInt32(&failed) == 0 {
				n := atomic.AddUint64(&next, 1)
				if n > cmd.Iterations {
					return
				}
				if err := selfTestOnce(cache); err != nil {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("iteration %d: %w", n, err)
					})
					atomic.StoreInt32(&failed, 1)
					return
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return writeResult(w, selfTestResult{cmd.Iterations, numWorkers})
}

// selfTestOnce generates a fresh key pair, runs the library self test on it
// and then checks a signature against the pair's address twice through the
// cache, so the second check is answered from it.
func selfTestOnce(cache *sigcache.SigCache) error {
	pub, sec := cipher.GenerateKeyPair()
	if err := cipher.TestSecKey(sec); err != nil {
		return err
	}

	var msg [64]byte
	if _, err := rand.Read(msg[:]); err != nil {
		return err
	}
	hash := digest.SumSHA256(msg[:])
	sig, err := cipher.SignHash(hash, sec)
	if err != nil {
		return err
	}

	addr := cipher.AddressFromPubKey(pub)
	for i := 0; i < 2; i++ {
		if err := cache.ChkSig(addr, hash, sig); err != nil {
			return err
		}
	}
	return nil
}
