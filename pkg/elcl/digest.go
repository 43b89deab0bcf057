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

import "encoding/hex"

// DigestHex renders a document digest (as returned by Lexer.Digest) in
// the lower-case hexadecimal form used for display and for comparing
// against a recorded signature.
func DigestHex(digest []byte) string {
	return hex.EncodeToString(digest)
}
