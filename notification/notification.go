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

// Package notification provides user notification messages.
package notification

import "fmt"

// Notification is a message that can be shown to the user.
type Notification interface {
	Push() error
}

// Message is a titled notification.
type Message struct {
	Title string
	Text  string
}

// Push shows the message.
func (m Message) Push() error {
	return push(m)
}

// NewDisabledMessage returns a successful disable message.
func NewDisabledMessage() Message {
	return Message{Title: "Sucesso", Text: "Windows Update foi desabilitado com sucesso!"}
}

// NewEnabledMessage returns a successful enable message.
func NewEnabledMessage() Message {
	return Message{Title: "Sucesso", Text: "Windows Update foi habilitado com sucesso!"}
}

// NewAlreadyDisabledMessage returns the message shown when updates are found disabled at startup.
func NewAlreadyDisabledMessage() Message {
	return Message{Title: "Status do Windows Update", Text: "Windows Update já encontra-se desabilitado!"}
}

// NewErrorMessage returns a failed toggle message.
func NewErrorMessage(err error) Message {
	return Message{Title: "Erro", Text: fmt.Sprintf("Erro: %v", err)}
}

// NewStatusErrorMessage returns a failed status check message.
func NewStatusErrorMessage(err error) Message {
	return Message{Title: "Erro", Text: fmt.Sprintf("Erro ao verificar o status do Windows Update: %v", err)}
}

// NewElevationMessage returns the message shown when administrative rights were declined.
func NewElevationMessage() Message {
	return Message{Title: "Direitos de Administrador Requeridos", Text: "Esta aplicação requer privilégios de administrador para funcionar."}
}
