// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// event
const (
	EventTx                 = 1
	EventReceipt            = 2
	EventQuery              = 3
	EventReplyQuery         = 4
	EventGetBalance         = 5
	EventReplyBalance       = 6
	EventListEvents         = 7
	EventReplyEvents        = 8
	EventRequestRandomWords = 9
	EventReplyRequestID     = 10
	EventGetOracleRequest   = 11
	EventReplyOracleRequest = 12
	EventReply              = 13
	EventGetLastHeight      = 14
	EventReplyLastHeight    = 15
)

var eventName = map[int]string{
	1:  "EventTx",
	2:  "EventReceipt",
	3:  "EventQuery",
	4:  "EventReplyQuery",
	5:  "EventGetBalance",
	6:  "EventReplyBalance",
	7:  "EventListEvents",
	8:  "EventReplyEvents",
	9:  "EventRequestRandomWords",
	10: "EventReplyRequestID",
	11: "EventGetOracleRequest",
	12: "EventReplyOracleRequest",
	13: "EventReply",
	14: "EventGetLastHeight",
	15: "EventReplyLastHeight",
}

// GetEventName 获取事件名称
func GetEventName(event int) string {
	name, ok := eventName[event]
	if ok {
		return name
	}
	return "unknow-event"
}
