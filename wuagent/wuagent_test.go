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

package wuagent

import "testing"

func TestNotificationLevelString(t *testing.T) {
	for _, tt := range []struct {
		in  NotificationLevel
		out string
	}{
		{LevelNotConfigured, "Não Configurado"},
		{LevelDisabled, "Desabilitado"},
		{LevelNotifyBeforeDownload, "Notificar antes do download"},
		{LevelScheduledInstallation, "Instalação agendada"},
		{NotificationLevel(9), "Desconhecido (9)"},
	} {
		if o := tt.in.String(); o != tt.out {
			t.Errorf("NotificationLevel(%d).String() = %q, want %q", int(tt.in), o, tt.out)
		}
	}
}
