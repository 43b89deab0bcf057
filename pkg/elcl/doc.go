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

// Package elcl implements the lexical layer of the Erbsland Configuration
// Language: a three-stage pipeline that turns a raw byte stream into a
// sequence of LexerTokens.
//
// The stages are, from the bottom up:
//
//   - Utf8Decoder decodes validated UTF-8 from a ByteSource, incrementally
//     hashing every consumed byte into a document digest.
//   - CharStream buffers one line of decoded runes at a time, tracking
//     line/column position and supporting capture-to-index and
//     capture-to-end-of-line for the raw text of tokens.
//   - TokenDecoder adds a cursor with pushback and transactional
//     backtracking (BeginTransaction/Commit/Rollback) over the character
//     stream, plus the delayed-error mechanism used for encoding and
//     control-character defects.
//
// On top of that sits the scanner library (the scan_*.go files): a set of
// functions, grounded one-to-one on the reference lexer's scanner
// functions, that each recognise one shape of token using the
// TokenDecoder's transactions to backtrack cleanly on a non-match.
//
// Lexer ties the scanner library into the outer, line-oriented state
// machine and exposes it as a simple pull-based NextToken method.
// NameLexer is a separate, smaller entry point for lexing a standalone
// name path (as opposed to a whole document).
package elcl
