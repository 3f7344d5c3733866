// Copyright the k-reasoner contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package tableau

import log "github.com/sirupsen/logrus"

// logger is the only package-level mutable state here besides
// formula's construction-order counter (see pkg/formula): the injected
// sink that every rule application, clash and branch decision is reported
// through. It defaults to logrus's standard logger, following this
// codebase's existing convention of a single shared `log` import rather
// than a logger threaded through every call.
var logger = log.StandardLogger()

// SetLogger replaces the sink that the reasoner reports through. The CLI
// does not call it: its --verbose flag sets the level of logrus's standard
// logger, which is the default sink.
func SetLogger(l *log.Logger) {
	logger = l
}
