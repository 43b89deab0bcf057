// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package elcl

// transactionState is the lifecycle of a Transaction.
type transactionState uint8

const (
	transactionOpen transactionState = iota
	transactionCommitted
	transactionRolledBack
)

// transactionHandler is implemented by TokenDecoder. It is the seam the C++
// original expressed as a pure-virtual TransactionHandler base class; Go
// models it as an interface so Transaction never needs to know about
// TokenDecoder's internals.
type transactionHandler interface {
	startTransaction(t *Transaction) int
	commitTransaction(t *Transaction)
	rollbackTransaction(t *Transaction)
	transactionCapturedSize(t *Transaction) int
	captureTransactionContent(t *Transaction, lowerCase bool) string
}

// Transaction is the C6 layer: a scope over the live character stream that
// can be rolled back to its exact starting point. The C++ original relies
// on RAII (the destructor rolls back an still-open transaction); Go has no
// destructors, so every scanner that opens one is expected to
// `defer tx.RollbackIfOpen()` immediately after beginTransaction returns,
// the same way database/sql callers defer Tx.Rollback after BeginTx.
type Transaction struct {
	handler    transactionHandler
	startIndex int
	state      transactionState
}

func beginTransaction(h transactionHandler) *Transaction {
	t := &Transaction{handler: h, state: transactionOpen}
	t.startIndex = h.startTransaction(t)
	return t
}

// CapturedSize returns the number of characters captured since the
// transaction began. Valid only while the transaction is open.
func (t *Transaction) CapturedSize() int {
	return t.handler.transactionCapturedSize(t)
}

// CapturedString returns the captured characters verbatim.
func (t *Transaction) CapturedString() string {
	return t.handler.captureTransactionContent(t, false)
}

// CapturedLowerCaseString returns the captured characters with ASCII
// letters folded to lower case.
func (t *Transaction) CapturedLowerCaseString() string {
	return t.handler.captureTransactionContent(t, true)
}

// Commit keeps every character captured since the transaction began.
// Nested transactions transfer their capture to the enclosing one rather
// than discarding it; see TokenDecoder.commitTransaction.
func (t *Transaction) Commit() {
	if t.state != transactionOpen {
		return
	}
	t.state = transactionCommitted
	t.handler.commitTransaction(t)
}

// Rollback restores the character stream to exactly where it stood when the
// transaction began.
func (t *Transaction) Rollback() {
	if t.state != transactionOpen {
		return
	}
	t.state = transactionRolledBack
	t.handler.rollbackTransaction(t)
}

// RollbackIfOpen is the deferred safety net every caller installs right
// after opening a transaction, standing in for the C++ destructor.
func (t *Transaction) RollbackIfOpen() {
	if t.state == transactionOpen {
		t.Rollback()
	}
}

// transactionBufferStartIndex is the index into the owning decoder's
// transaction buffer where this transaction's captured characters begin.
func (t *Transaction) transactionBufferStartIndex() int { return t.startIndex }
