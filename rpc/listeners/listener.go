// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners in front of the RPC server
package listeners

import (
	"strings"

	"github.com/bitmark-inc/badged/util"
	"github.com/bitmark-inc/logger"
)

const minConnectionCount = 1

// Listener - a started listener can be stopped
type Listener interface {
	Serve() error
	Stop()
}

// a listen address ready for net.Listen
type address struct {
	network string
	address string
}

// convert the configured listen strings
//
// "*:PORT" listens on all tcp4 and tcp6 interfaces
func parseListenAddresses(listen []string, log *logger.L) ([]address, error) {
	parsed := make([]address, 0, len(listen))
	for _, l := range listen {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "*:") {
			parsed = append(parsed, address{
				network: "tcp",
				address: "[::]:" + l[2:],
			})
			continue
		}

		c, err := util.NewConnection(l)
		if nil != err {
			log.Errorf("invalid listen address: %q  error: %s", l, err)
			return nil, err
		}
		canonical, v6 := c.CanonicalIPandPort("")
		network := "tcp4"
		if v6 {
			network = "tcp6"
		}
		parsed = append(parsed, address{
			network: network,
			address: canonical,
		})
	}
	return parsed, nil
}
