// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package elevation checks for administrative privileges and relaunches the
// current process elevated when they are missing.
package elevation

import "errors"

// ErrDeclined is returned when the user refuses the elevation prompt.
var ErrDeclined = errors.New("falha ao conseguir privilegios administrativos")
