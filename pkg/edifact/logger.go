// Copyright 2021 Comcast Cable Communications Management, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or   implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package edifact

import (
	"io"
	"log"
)

// Logger is used for non-fatal diagnostics that do not fit the report/error
// contracts (e.g. an encoding fallback during sniffing). It is silent by
// default; callers that want to see it redirect its output.
var Logger = log.New(io.Discard, "edifact: ", log.LstdFlags)
