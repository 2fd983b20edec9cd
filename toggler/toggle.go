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

package toggler

import (
	"errors"
	"fmt"

	"golang.org/x/net/context"

	"github.com/google/wutoggle/dispatch"
	"github.com/google/wutoggle/wulib"
)

// GetStatus reads the service state and the policy registry. Read errors are
// logged and joined into the returned error; the report is always usable and
// defaults to Enabled.
func (t *Toggler) GetStatus() (Report, error) {
	var r Report
	var errs []error

	st, err := t.sys.Services.Query(wulib.UpdateSvc)
	if err != nil {
		errorf(wulib.EvtErrStatus, "Erro ao verificar o status do Windows Update: %v", err)
		errs = append(errs, fmt.Errorf("query %s: %w", wulib.UpdateSvc, err))
	} else {
		r.Service = st
		infof(wulib.EvtStatus, "Status do Serviço Windows Update: %s", st)
	}
	if r.StartType, err = t.sys.Services.StartType(wulib.UpdateSvc); err != nil {
		errs = append(errs, fmt.Errorf("start type %s: %w", wulib.UpdateSvc, err))
	}

	exists, err := t.sys.Policy.Exists()
	if err != nil {
		errorf(wulib.EvtErrStatus, "Erro ao verificar o status do Windows Update: %v", err)
		return r, errors.Join(append(errs, fmt.Errorf("open policy key: %w", err))...)
	}
	if !exists {
		info(wulib.EvtStatus, "Chave do registro não encontrada. Windows Update está no estado padrão.")
		return r, errors.Join(errs...)
	}
	r.Configured = true

	for _, pv := range []struct {
		name string
		dst  *PolicyValue
	}{
		{wulib.NoAutoUpdate, &r.NoAutoUpdate},
		{wulib.AUOptions, &r.AUOptions},
	} {
		v, ok, err := t.sys.Policy.Value(pv.name)
		if err != nil {
			errorf(wulib.EvtErrStatus, "Erro ao verificar o status do Windows Update: %v", err)
			errs = append(errs, fmt.Errorf("read %s: %w", pv.name, err))
			continue
		}
		*pv.dst = PolicyValue{Value: v, Set: ok}
	}
	infof(wulib.EvtStatus, "Configuração do AutoUpdate no registro: %s", r.NoAutoUpdate)

	if r.NoAutoUpdate.Set && r.NoAutoUpdate.Value == 1 {
		r.Status = Disabled
	}
	infof(wulib.EvtStatus, "Status atual: Windows Update %s", r.Status)
	return r, errors.Join(errs...)
}

// Disable stops the update service, disables it, writes the blocking policy
// and refreshes group policy. Only service control failures and commands that
// could not be launched abort the sequence.
func (t *Toggler) Disable(ctx context.Context) error {
	info(wulib.EvtDisable, "Iniciando o processo para desabilitar o Windows Update ...")
	if err := t.disable(ctx); err != nil {
		errorf(wulib.EvtErrToggle, "Erro durante o processo de desabilitar o Windows Update: %v", err)
		return err
	}
	info(wulib.EvtDisable, "Windows Update foi desabilitado com sucesso!")
	return nil
}

func (t *Toggler) disable(ctx context.Context) error {
	st, err := t.sys.Services.Query(wulib.UpdateSvc)
	if err != nil {
		return serviceFailure("query", wulib.UpdateSvc, err)
	}
	if st == Running {
		info(wulib.EvtService, "Parando o serviço Windows Update...")
		if err := t.sys.Services.Stop(wulib.UpdateSvc); err != nil {
			return serviceFailure("stop", wulib.UpdateSvc, err)
		}
		if err := t.sys.Services.Wait(wulib.UpdateSvc, Stopped, t.Timeout); err != nil {
			return serviceFailure("stop", wulib.UpdateSvc, err)
		}
		info(wulib.EvtService, "Serviço do Windows Update foi finalizado com sucesso!")
	}

	info(wulib.EvtService, "Configurando o tipo de inicialização do serviço para desabilitado...")
	if _, err := t.sys.Runner.Run(ctx, dispatch.SC("wuauserv", "start=", "disabled")); err != nil {
		return err
	}

	info(wulib.EvtRegistry, "Atualizando as configurações do registro...")
	if err := t.writePolicy(); err != nil {
		errorf(wulib.EvtErrRegistry, "Erro ao atualizar o registro: %v", err)
	} else {
		info(wulib.EvtRegistry, "Configurações do registro foram atualizadas com sucesso!")
	}

	t.refreshPolicy(ctx)
	return nil
}

// writePolicy sets NoAutoUpdate. AUOptions is 1 on a freshly created key and
// 2 (notify before download) on a key that already existed.
func (t *Toggler) writePolicy() error {
	existed, err := t.sys.Policy.Create()
	if err != nil {
		return err
	}
	opts := uint32(1)
	if existed {
		opts = 2
	}
	if err := t.sys.Policy.SetDWord(wulib.NoAutoUpdate, 1); err != nil {
		return err
	}
	return t.sys.Policy.SetDWord(wulib.AUOptions, opts)
}

// Enable configures and starts BITS and the update service, removes the
// blocking policy and refreshes group policy. Failures propagate as in Disable.
func (t *Toggler) Enable(ctx context.Context) error {
	info(wulib.EvtEnable, "Iniciando processo de habilitação do Windows Update...")
	if err := t.enable(ctx); err != nil {
		errorf(wulib.EvtErrToggle, "Erro durante o processo de habilitação: %v", err)
		return err
	}
	info(wulib.EvtEnable, "Windows Update foi habilitado com sucesso!")
	return nil
}

func (t *Toggler) enable(ctx context.Context) error {
	info(wulib.EvtService, "Configurando o serviço BITS...")
	if _, err := t.sys.Runner.Run(ctx, dispatch.SC("bits", "start=", "auto")); err != nil {
		return err
	}
	if err := t.ensureRunning(wulib.BITSSvc, "Serviço BITS já está em execução!", ""); err != nil {
		return err
	}

	info(wulib.EvtService, "Habilitando o Serviço do Windows Update...")
	if _, err := t.sys.Runner.Run(ctx, dispatch.SC("wuauserv", "start=", "auto")); err != nil {
		return err
	}
	if err := t.ensureRunning(wulib.UpdateSvc, "Serviço Windows Update já está em execução.", "Serviço Windows Update iniciado com sucesso."); err != nil {
		return err
	}

	info(wulib.EvtRegistry, "Atualizando as configurações do registro...")
	if err := t.clearPolicy(); err != nil {
		errorf(wulib.EvtErrRegistry, "Erro ao atualizar o registro: %v", err)
	} else {
		info(wulib.EvtRegistry, "As configurações do registro foram atualizadas com sucesso!")
	}

	t.refreshPolicy(ctx)
	return nil
}

// ensureRunning starts name unless it is already running. A service with a
// pending transition is only waited for.
func (t *Toggler) ensureRunning(name, running, started string) error {
	st, err := t.sys.Services.Query(name)
	if err != nil {
		return serviceFailure("query", name, err)
	}
	switch st {
	case Running:
		info(wulib.EvtService, running)
		return nil
	case Pending:
	default:
		if err := t.sys.Services.Start(name); err != nil {
			return serviceFailure("start", name, err)
		}
	}
	if err := t.sys.Services.Wait(name, Running, t.Timeout); err != nil {
		return serviceFailure("start", name, err)
	}
	if started != "" {
		info(wulib.EvtService, started)
	}
	return nil
}

// serviceFailure logs a failed service control step and wraps err.
func serviceFailure(op, name string, err error) error {
	errorf(wulib.EvtErrService, "Falha ao controlar o serviço %s (%s): %v", name, op, err)
	return fmt.Errorf("%s %s: %w", op, name, err)
}

// clearPolicy deletes both policy values, leaving the key in place.
func (t *Toggler) clearPolicy() error {
	exists, err := t.sys.Policy.Exists()
	if err != nil || !exists {
		return err
	}
	for _, v := range []string{wulib.NoAutoUpdate, wulib.AUOptions} {
		if err := t.sys.Policy.DeleteValue(v); err != nil {
			return err
		}
	}
	return nil
}

// refreshPolicy runs gpupdate. Failures are already logged by the runner and
// never abort a toggle.
func (t *Toggler) refreshPolicy(ctx context.Context) {
	if !t.PolicyRefresh {
		info(wulib.EvtPolicyRefresh, "Atualização da política de grupo ignorada.")
		return
	}
	t.sys.Runner.Run(ctx, dispatch.GPUpdate())
}

// Apply performs the transition named by a.
func (t *Toggler) Apply(ctx context.Context, a wulib.Action) error {
	switch a {
	case wulib.ActionEnable:
		return t.Enable(ctx)
	case wulib.ActionDisable:
		return t.Disable(ctx)
	}
	errorf(wulib.EvtErrAction, "ERRO: Acao invalida '%s'. Use 'enable' ou 'disable'.", a)
	return fmt.Errorf("invalid action %q", a)
}

// Target returns the action that flips the current status.
func Target(s Status) wulib.Action {
	if s == Disabled {
		return wulib.ActionEnable
	}
	return wulib.ActionDisable
}
