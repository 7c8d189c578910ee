// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/badged/counter"
	"github.com/bitmark-inc/badged/diamond"
	"github.com/bitmark-inc/badged/util"
	"github.com/bitmark-inc/badged/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Topic - first part of every published message
const Topic = "badged"

const (
	queueSize = 1000
	zapDomain = "badged-broadcast"
)

type broadcaster struct {
	log     *logger.L
	queue   chan []byte
	dropped counter.Counter
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {
	log := logger.New("broadcaster")

	brdc.log = log
	brdc.queue = make(chan []byte, queueSize)

	log.Info("initialising…")

	connections := make([]*util.Connection, len(broadcast))
	for i, address := range broadcast {
		c, err := util.NewConnection(address)
		if nil != err {
			log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
			return err
		}
		connections[i] = c
	}

	if err := zmqutil.StartAuthentication(); nil != err {
		return err
	}

	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, connections)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	return nil
}

// queue an event without blocking the dispatching goroutine
func (brdc *broadcaster) publish(event diamond.Event) {
	data, err := json.Marshal(event)
	if nil != err {
		brdc.log.Errorf("operation: %s  marshal error: %s", event.Signature, err)
		return
	}

	select {
	case brdc.queue <- data:
	default:
		n := brdc.dropped.Increment()
		brdc.log.Warnf("queue full: dropped: %s  total dropped: %d", event.Signature, n)
	}
}

func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case data := <-brdc.queue:
			brdc.send(data)
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) send(data []byte) {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		if _, err := socket.SendMessage(Topic, data); nil != err {
			brdc.log.Errorf("send error: %s", err)
		}
	}
}
