// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command with its already serialised parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - bounded channel of messages
//
// a full queue drops new messages rather than blocking the sender
type Queue struct {
	sync.Mutex
	c       chan Message
	dropped uint64
}

// BusType - all of the queues
type BusType struct {
	Broadcast *Queue // committed transactions to be published
	TestQueue *Queue // for tests only
}

// Bus - the global set of queues
var Bus = BusType{
	Broadcast: NewQueue(queueSize),
	TestQueue: NewQueue(queueSize),
}

// NewQueue - create a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, returns false if it was dropped
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	select {
	case queue.c <- m:
		return true
	default:
		queue.Lock()
		queue.dropped += 1
		queue.Unlock()
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	queue.Lock()
	defer queue.Unlock()
	return queue.dropped
}
