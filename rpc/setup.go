// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/badged/counter"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/rpc/certificate"
	"github.com/bitmark-inc/badged/rpc/handler"
	"github.com/bitmark-inc/badged/rpc/listeners"
	"github.com/bitmark-inc/badged/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// connections currently being served
	count counter.Counter

	// running servers
	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	router server.Router,
	services server.Services,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	globalData.listeners = make([]listeners.Listener, 0, 2)

	if 0 != len(rpcConfiguration.Listen) {
		tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", rpcName, fingerprint)

		s := server.Create(log, version, &globalData.count, router, services)
		l, err := listeners.NewRPC(rpcConfiguration, log, &globalData.count, s, tlsConfig)
		if nil != err {
			return err
		}
		globalData.listeners = append(globalData.listeners, l)
	}

	if 0 != len(httpsConfiguration.Listen) {
		tlsConfig, fingerprint, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

		s := server.Create(log, version, &globalData.count, router, services)
		h := handler.New(log, s, time.Now().UTC(), version, httpsConfiguration.MaximumConnections)
		l, err := listeners.NewHTTPS(httpsConfiguration, log, tlsConfig, h)
		if nil != err {
			return err
		}
		globalData.listeners = append(globalData.listeners, l)
	}

	for _, l := range globalData.listeners {
		if err := l.Serve(); nil != err {
			stopAll()
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}
