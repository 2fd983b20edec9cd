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

package notification

import (
	"errors"
	"testing"
)

func TestMessages(t *testing.T) {
	err := errors.New("service wuauserv is Running after 30s, want Stopped")
	for _, tt := range []struct {
		in  Message
		out Message
	}{
		{NewDisabledMessage(), Message{"Sucesso", "Windows Update foi desabilitado com sucesso!"}},
		{NewEnabledMessage(), Message{"Sucesso", "Windows Update foi habilitado com sucesso!"}},
		{NewAlreadyDisabledMessage(), Message{"Status do Windows Update", "Windows Update já encontra-se desabilitado!"}},
		{NewErrorMessage(err), Message{"Erro", "Erro: service wuauserv is Running after 30s, want Stopped"}},
		{NewStatusErrorMessage(err), Message{"Erro", "Erro ao verificar o status do Windows Update: service wuauserv is Running after 30s, want Stopped"}},
	} {
		if tt.in != tt.out {
			t.Errorf("message = %+v, want %+v", tt.in, tt.out)
		}
	}
}
