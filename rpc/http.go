// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"

	"github.com/google/uuid"
	"github.com/rs/cors"
)

// 单个请求体的最大长度
const maxRequestSize = 1 << 20

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }
func (c *HTTPConn) Close() error                      { return nil }

// Handler json rpc 的 http 入口: ip 白名单, cors, 每个请求一个 uuid 便于查日志
func (r *RPC) Handler() http.Handler {
	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New().String()
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil || !r.checkIPWhitelist(ip) {
			log.Error("jrpc reject", "id", id, "remote", req.RemoteAddr)
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errcode":"-1","result":null,"msg":"reject"}`))
			return
		}
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		log.Debug("jrpc request", "id", id, "remote", ip)
		w.Header().Set("Content-type", "application/json")
		serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: io.LimitReader(req.Body, maxRequestSize), out: w})
		if err := r.server.ServeRequest(serverCodec); err != nil {
			log.Error("Error while serving JSON request", "id", id, "err", err)
		}
	})
	co := cors.New(cors.Options{
		AllowedOrigins: r.cfg.CorsOrigins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return co.Handler(h)
}

func (r *RPC) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	if r.whitelist["0.0.0.0"] {
		return true
	}
	return r.whitelist[addr]
}
