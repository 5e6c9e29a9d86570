// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue 进程内的多对多消息总线, 按 topic 投递
package queue

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/33cn/coinflip/types"
	log "github.com/inconshreveable/log15"
)

//消息队列：
//多对多消息队列
//消息：topic

//1. 队列特点：
//1.1 一个topic 只有一个订阅者（以后会变成多个）目前基本够用，模块都只有一个实例.
//1.2 消息的回复直接通过消息自带的channel 回复
var qlog = log.New("module", "queue")

const (
	// DefaultChanBuffer 每个 topic 的缓冲
	DefaultChanBuffer    = 64
	defaultLowChanBuffer = 40960
)

// DisableLog disable log
func DisableLog() {
	qlog.SetHandler(log.DiscardHandler())
}

type chanSub struct {
	high    chan *Message
	low     chan *Message
	isClose int32
}

// stop 投递空消息通知订阅者退出, 通道满时订阅者会从 client.done 退出
func (sub *chanSub) stop() {
	select {
	case sub.high <- &Message{}:
	default:
	}
	select {
	case sub.low <- &Message{}:
	default:
	}
}

// Queue only one obj in project
// Queue only generate Client and start、Close operate,
// if you send message, you must use client.
type Queue interface {
	Close()
	Start()
	Client() Client
	Name() string
}

type queue struct {
	chanSubs map[string]*chanSub
	mu       sync.Mutex
	done     chan struct{}
	interupt chan struct{}
	isClose  int32
	name     string
}

// New new queue struct
func New(name string) Queue {
	q := &queue{
		chanSubs: make(map[string]*chanSub),
		name:     name,
		done:     make(chan struct{}, 1),
		interupt: make(chan struct{}, 1),
	}
	return q
}

// Name return the queue name
func (q *queue) Name() string {
	return q.name
}

// Start 阻塞直到收到系统信号或者 CloseQueue
func (q *queue) Start() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	select {
	case <-q.done:
		qlog.Info("closing coinflip done")
	case <-q.interupt:
		qlog.Info("closing coinflip")
	case s := <-c:
		qlog.Info("Got signal:", "signal", s)
	}
}

func (q *queue) isClosed() bool {
	return atomic.LoadInt32(&q.isClose) == 1
}

// Close 关闭所有 topic
func (q *queue) Close() {
	if q.isClosed() {
		return
	}
	q.mu.Lock()
	for topic, sub := range q.chanSubs {
		if sub.isClose == 0 {
			sub.stop()
		}
		q.chanSubs[topic] = &chanSub{isClose: 1}
	}
	q.mu.Unlock()
	q.done <- struct{}{}
	close(q.done)
	atomic.StoreInt32(&q.isClose, 1)
	qlog.Info("queue module closed")
}

func (q *queue) chanSub(topic string) *chanSub {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.chanSubs[topic]
	if !ok {
		q.chanSubs[topic] = &chanSub{
			high: make(chan *Message, DefaultChanBuffer),
			low:  make(chan *Message, defaultLowChanBuffer),
		}
	}
	return q.chanSubs[topic]
}

func (q *queue) closeTopic(topic string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	sub, ok := q.chanSubs[topic]
	if !ok {
		return
	}
	if sub.isClose == 0 {
		sub.stop()
	}
	q.chanSubs[topic] = &chanSub{isClose: 1}
}

func (q *queue) send(msg *Message, timeout time.Duration) (err error) {
	if q.isClosed() {
		return types.ErrChannelClosed
	}
	sub := q.chanSub(msg.Topic)
	if sub.isClose == 1 {
		return types.ErrChannelClosed
	}
	if timeout == -1 {
		sub.high <- msg
		return nil
	}
	defer func() {
		res := recover()
		if res != nil {
			err = fmt.Errorf("%v", res)
		}
	}()
	if timeout == 0 {
		select {
		case sub.high <- msg:
			return nil
		default:
			qlog.Error("send chainfull", "msg", msg, "topic", msg.Topic, "sub", sub)
			return types.ErrChannelFull
		}
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case sub.high <- msg:
	case <-t.C:
		qlog.Error("send timeout", "msg", msg, "topic", msg.Topic, "sub", sub)
		return types.ErrTimeout
	}
	return nil
}

func (q *queue) sendLowTimeout(msg *Message, timeout time.Duration) error {
	if q.isClosed() {
		return types.ErrChannelClosed
	}
	sub := q.chanSub(msg.Topic)
	if sub.isClose == 1 {
		return types.ErrChannelClosed
	}
	if timeout == -1 {
		sub.low <- msg
		return nil
	}
	if timeout == 0 {
		select {
		case sub.low <- msg:
			return nil
		default:
			qlog.Error("send asyn err", "msg", msg, "err", types.ErrChannelFull)
			return types.ErrChannelFull
		}
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case sub.low <- msg:
		return nil
	case <-t.C:
		qlog.Error("send asyn timeout", "msg", msg)
		return types.ErrTimeout
	}
}

// Client new client
func (q *queue) Client() Client {
	return newClient(q)
}

// Message message struct
type Message struct {
	Topic   string
	Ty      int64
	ID      int64
	Data    interface{}
	chReply chan *Message
}

// NewMessage new message
func NewMessage(id int64, topic string, ty int64, data interface{}) (msg *Message) {
	msg = &Message{}
	msg.ID = id
	msg.Ty = ty
	msg.Data = data
	msg.Topic = topic
	msg.chReply = make(chan *Message, 1)
	return msg
}

// GetData get message data
func (msg *Message) GetData() interface{} {
	if _, ok := msg.Data.(error); ok {
		return nil
	}
	return msg.Data
}

// Err if err return error msg, or return nil
func (msg *Message) Err() error {
	if err, ok := msg.Data.(error); ok {
		return err
	}
	return nil
}

// Reply reply message to reply chan
func (msg *Message) Reply(replyMsg *Message) {
	if msg.chReply == nil {
		qlog.Debug("reply a empty chreply", "msg", msg)
		return
	}
	msg.chReply <- replyMsg
	qlog.Debug("reply msg ok", "msg", msg)
}

// ReplyErr reply error
func (msg *Message) ReplyErr(title string, err error) {
	var reply types.Reply
	if err != nil {
		qlog.Error(title, "reply.err", err.Error())
		reply.IsOk = false
		reply.Msg = []byte(err.Error())
	} else {
		qlog.Debug(title, "success", "ok")
		reply.IsOk = true
	}
	id := atomic.AddInt64(&gid, 1)
	msg.Reply(NewMessage(id, "", types.EventReply, &reply))
}

// String print the message information
func (msg *Message) String() string {
	return fmt.Sprintf("{topic:%s, Ty:%s, Id:%d, Err:%v, Ch:%v}", msg.Topic,
		types.GetEventName(int(msg.Ty)), msg.ID, msg.Err(), msg.chReply != nil)
}
