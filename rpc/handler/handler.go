// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP front end of the RPC server
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/badged/counter"
	"github.com/bitmark-inc/badged/mode"
	"github.com/bitmark-inc/logger"
)

// Handler - the HTTP entry points
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// paths that are restricted by the allow lists
const (
	detailsPath = "details"
	rpcPath     = "rpc"
)

type handler struct {
	sync.RWMutex
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// DetailsReply - result of a details request
type DetailsReply struct {
	Chain   string `json:"chain"`
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// New - create the HTTP handler for an RPC server
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - replace the allow lists
//
// a path with no list is open to everybody
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - one JSON-RPC request in the body of a POST
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed(rpcPath, r.RemoteAddr) {
		h.log.Warnf("deny rpc access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}
	if !h.count.Below(h.maximumConnections + 1) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	codec := jsonrpc.NewServerCodec(&connection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Errorf("rpc serve error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// Details - node status for monitoring
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed(detailsPath, r.RemoteAddr) {
		h.log.Warnf("deny details access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}
	if !h.count.Below(h.maximumConnections + 1) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	reply := DetailsReply{
		Chain:   mode.ChainName(),
		Mode:    mode.String(),
		RPCs:    h.count.Uint64(),
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
	}
	sendReply(w, reply)
}

func (h *handler) allowed(path string, remoteAddr string) bool {
	h.RLock()
	defer h.RUnlock()

	set, ok := h.allow[path]
	if !ok {
		return true
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range set {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// adapts an HTTP request and response to the RPC codec
type connection struct {
	in  io.Reader
	out io.Writer
}

func (c *connection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *connection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}

func (c *connection) Close() error {
	return nil
}

// send a JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
