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

// Package wuagent reads how the Windows Update Agent itself sees automatic
// updates, independently of the service and policy state.
package wuagent

import "fmt"

// NotificationLevel is the AutomaticUpdatesNotificationLevel of the agent.
// https://docs.microsoft.com/en-us/windows/win32/api/wuapi/ne-wuapi-automaticupdatesnotificationlevel
type NotificationLevel int

// Notification levels.
const (
	LevelNotConfigured NotificationLevel = iota
	LevelDisabled
	LevelNotifyBeforeDownload
	LevelNotifyBeforeInstallation
	LevelScheduledInstallation
)

func (l NotificationLevel) String() string {
	switch l {
	case LevelNotConfigured:
		return "Não Configurado"
	case LevelDisabled:
		return "Desabilitado"
	case LevelNotifyBeforeDownload:
		return "Notificar antes do download"
	case LevelNotifyBeforeInstallation:
		return "Notificar antes da instalação"
	case LevelScheduledInstallation:
		return "Instalação agendada"
	default:
		return fmt.Sprintf("Desconhecido (%d)", int(l))
	}
}

// microsoftUpdate is the Microsoft Update service ID.
const microsoftUpdate = "7971f918-a847-4430-9279-4a52d1efe18d"

// registered is the RegistrationState of a registered update service.
const registered = 3

// Info is the agent state.
type Info struct {
	// ServiceEnabled reports whether all components of automatic updates are operational.
	ServiceEnabled bool
	Level          NotificationLevel
	RebootRequired bool
	// MicrosoftUpdate reports whether updates for other Microsoft products are enabled.
	MicrosoftUpdate bool
}
