// Copyright 2019 Google LLC
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

// Package errors translates Win32 system error codes returned by service
// control commands into a help string.
package errors

import "fmt"

// SystemError represents a Win32 system error code, as returned in the exit
// code of sc.exe.
type SystemError uint32

// System error codes collected from:
// https://learn.microsoft.com/en-us/windows/win32/debug/system-error-codes--1000-1299-
// https://learn.microsoft.com/en-us/windows/win32/debug/system-error-codes--0-499-
const (
	ERROR_SUCCESS                    SystemError = 0
	ERROR_FILE_NOT_FOUND             SystemError = 2
	ERROR_ACCESS_DENIED              SystemError = 5
	ERROR_INVALID_HANDLE             SystemError = 6
	ERROR_INVALID_PARAMETER          SystemError = 87
	ERROR_INVALID_NAME               SystemError = 123
	ERROR_DEPENDENT_SERVICES_RUNNING SystemError = 1051
	ERROR_INVALID_SERVICE_CONTROL    SystemError = 1052
	ERROR_SERVICE_REQUEST_TIMEOUT    SystemError = 1053
	ERROR_SERVICE_NO_THREAD          SystemError = 1054
	ERROR_SERVICE_DATABASE_LOCKED    SystemError = 1055
	ERROR_SERVICE_ALREADY_RUNNING    SystemError = 1056
	ERROR_INVALID_SERVICE_ACCOUNT    SystemError = 1057
	ERROR_SERVICE_DISABLED           SystemError = 1058
	ERROR_CIRCULAR_DEPENDENCY        SystemError = 1059
	ERROR_SERVICE_DOES_NOT_EXIST     SystemError = 1060
	ERROR_SERVICE_CANNOT_ACCEPT_CTRL SystemError = 1061
	ERROR_SERVICE_NOT_ACTIVE         SystemError = 1062
	ERROR_SERVICE_DEPENDENCY_FAIL    SystemError = 1068
	ERROR_SERVICE_LOGON_FAILED       SystemError = 1069
	ERROR_SERVICE_START_HANG         SystemError = 1070
	ERROR_SERVICE_MARKED_FOR_DELETE  SystemError = 1072
	ERROR_SERVICE_EXISTS             SystemError = 1073
	ERROR_SERVICE_DEPENDENCY_DELETED SystemError = 1075
	ERROR_CANCELLED                  SystemError = 1223
	ERROR_NOT_ALL_ASSIGNED           SystemError = 1300
	ERROR_PRIVILEGE_NOT_HELD         SystemError = 1314
	ERROR_ELEVATION_REQUIRED         SystemError = 740
	ERROR_SERVICE_NOT_IN_EXE         SystemError = 1083
	ERROR_SHUTDOWN_IN_PROGRESS       SystemError = 1115
	ERROR_PROCESS_ABORTED            SystemError = 1067
	ERROR_EXCEPTION_IN_SERVICE       SystemError = 1064
	ERROR_SERVICE_SPECIFIC_ERROR     SystemError = 1066
	ERROR_SERVICE_NEVER_STARTED      SystemError = 1077
	ERROR_DUPLICATE_SERVICE_NAME     SystemError = 1078
	ERROR_DIFFERENT_SERVICE_ACCOUNT  SystemError = 1079
	ERROR_INVALID_SERVICE_LOCK       SystemError = 1071
)

// ErrorDesc returns the documented description of the error code.
func (e SystemError) ErrorDesc() string {
	switch e {
	case ERROR_SUCCESS:
		return `The operation completed successfully.`
	case ERROR_FILE_NOT_FOUND:
		return `The system cannot find the file specified.`
	case ERROR_ACCESS_DENIED:
		return `Access is denied.`
	case ERROR_INVALID_HANDLE:
		return `The handle is invalid.`
	case ERROR_INVALID_PARAMETER:
		return `The parameter is incorrect.`
	case ERROR_INVALID_NAME:
		return `The filename, directory name, or volume label syntax is incorrect.`
	case ERROR_DEPENDENT_SERVICES_RUNNING:
		return `A stop control has been sent to a service that other running services are dependent on.`
	case ERROR_INVALID_SERVICE_CONTROL:
		return `The requested control is not valid for this service.`
	case ERROR_SERVICE_REQUEST_TIMEOUT:
		return `The service did not respond to the start or control request in a timely fashion.`
	case ERROR_SERVICE_NO_THREAD:
		return `A thread could not be created for the service.`
	case ERROR_SERVICE_DATABASE_LOCKED:
		return `The service database is locked.`
	case ERROR_SERVICE_ALREADY_RUNNING:
		return `An instance of the service is already running.`
	case ERROR_INVALID_SERVICE_ACCOUNT:
		return `The account name is invalid or does not exist, or the password is invalid for the account name specified.`
	case ERROR_SERVICE_DISABLED:
		return `The service cannot be started, either because it is disabled or because it has no enabled devices associated with it.`
	case ERROR_CIRCULAR_DEPENDENCY:
		return `Circular service dependency was specified.`
	case ERROR_SERVICE_DOES_NOT_EXIST:
		return `The specified service does not exist as an installed service.`
	case ERROR_SERVICE_CANNOT_ACCEPT_CTRL:
		return `The service cannot accept control messages at this time.`
	case ERROR_SERVICE_NOT_ACTIVE:
		return `The service has not been started.`
	case ERROR_SERVICE_DEPENDENCY_FAIL:
		return `The dependency service or group failed to start.`
	case ERROR_SERVICE_LOGON_FAILED:
		return `The service did not start due to a logon failure.`
	case ERROR_SERVICE_START_HANG:
		return `After starting, the service hung in a start-pending state.`
	case ERROR_SERVICE_MARKED_FOR_DELETE:
		return `The specified service has been marked for deletion.`
	case ERROR_SERVICE_EXISTS:
		return `The specified service already exists.`
	case ERROR_SERVICE_DEPENDENCY_DELETED:
		return `The dependency service does not exist or has been marked for deletion.`
	case ERROR_CANCELLED:
		return `The operation was canceled by the user.`
	case ERROR_NOT_ALL_ASSIGNED:
		return `Not all privileges or groups referenced are assigned to the caller.`
	case ERROR_PRIVILEGE_NOT_HELD:
		return `A required privilege is not held by the client.`
	case ERROR_ELEVATION_REQUIRED:
		return `The requested operation requires elevation.`
	case ERROR_SERVICE_NOT_IN_EXE:
		return `The executable program that this service is configured to run in does not implement the service.`
	case ERROR_SHUTDOWN_IN_PROGRESS:
		return `A system shutdown is in progress.`
	case ERROR_PROCESS_ABORTED:
		return `The process terminated unexpectedly.`
	case ERROR_EXCEPTION_IN_SERVICE:
		return `An exception occurred in the service when handling the control request.`
	case ERROR_SERVICE_SPECIFIC_ERROR:
		return `The service has returned a service-specific error code.`
	case ERROR_SERVICE_NEVER_STARTED:
		return `No attempts to start the service have been made since the last boot.`
	case ERROR_DUPLICATE_SERVICE_NAME:
		return `The name is already in use as either a service name or a service display name.`
	case ERROR_DIFFERENT_SERVICE_ACCOUNT:
		return `The account specified for this service is different from the account specified for other services running in the same process.`
	case ERROR_INVALID_SERVICE_LOCK:
		return `The specified service database lock is invalid.`
	default:
		return fmt.Sprintf("Unknown error: 0x%X", uint32(e))
	}
}

// ErrorName returns the symbolic name of the error code.
func (e SystemError) ErrorName() string {
	switch e {
	case ERROR_SUCCESS:
		return `ERROR_SUCCESS`
	case ERROR_FILE_NOT_FOUND:
		return `ERROR_FILE_NOT_FOUND`
	case ERROR_ACCESS_DENIED:
		return `ERROR_ACCESS_DENIED`
	case ERROR_INVALID_HANDLE:
		return `ERROR_INVALID_HANDLE`
	case ERROR_INVALID_PARAMETER:
		return `ERROR_INVALID_PARAMETER`
	case ERROR_INVALID_NAME:
		return `ERROR_INVALID_NAME`
	case ERROR_DEPENDENT_SERVICES_RUNNING:
		return `ERROR_DEPENDENT_SERVICES_RUNNING`
	case ERROR_INVALID_SERVICE_CONTROL:
		return `ERROR_INVALID_SERVICE_CONTROL`
	case ERROR_SERVICE_REQUEST_TIMEOUT:
		return `ERROR_SERVICE_REQUEST_TIMEOUT`
	case ERROR_SERVICE_NO_THREAD:
		return `ERROR_SERVICE_NO_THREAD`
	case ERROR_SERVICE_DATABASE_LOCKED:
		return `ERROR_SERVICE_DATABASE_LOCKED`
	case ERROR_SERVICE_ALREADY_RUNNING:
		return `ERROR_SERVICE_ALREADY_RUNNING`
	case ERROR_INVALID_SERVICE_ACCOUNT:
		return `ERROR_INVALID_SERVICE_ACCOUNT`
	case ERROR_SERVICE_DISABLED:
		return `ERROR_SERVICE_DISABLED`
	case ERROR_CIRCULAR_DEPENDENCY:
		return `ERROR_CIRCULAR_DEPENDENCY`
	case ERROR_SERVICE_DOES_NOT_EXIST:
		return `ERROR_SERVICE_DOES_NOT_EXIST`
	case ERROR_SERVICE_CANNOT_ACCEPT_CTRL:
		return `ERROR_SERVICE_CANNOT_ACCEPT_CTRL`
	case ERROR_SERVICE_NOT_ACTIVE:
		return `ERROR_SERVICE_NOT_ACTIVE`
	case ERROR_SERVICE_DEPENDENCY_FAIL:
		return `ERROR_SERVICE_DEPENDENCY_FAIL`
	case ERROR_SERVICE_LOGON_FAILED:
		return `ERROR_SERVICE_LOGON_FAILED`
	case ERROR_SERVICE_START_HANG:
		return `ERROR_SERVICE_START_HANG`
	case ERROR_SERVICE_MARKED_FOR_DELETE:
		return `ERROR_SERVICE_MARKED_FOR_DELETE`
	case ERROR_SERVICE_EXISTS:
		return `ERROR_SERVICE_EXISTS`
	case ERROR_SERVICE_DEPENDENCY_DELETED:
		return `ERROR_SERVICE_DEPENDENCY_DELETED`
	case ERROR_CANCELLED:
		return `ERROR_CANCELLED`
	case ERROR_NOT_ALL_ASSIGNED:
		return `ERROR_NOT_ALL_ASSIGNED`
	case ERROR_PRIVILEGE_NOT_HELD:
		return `ERROR_PRIVILEGE_NOT_HELD`
	case ERROR_ELEVATION_REQUIRED:
		return `ERROR_ELEVATION_REQUIRED`
	case ERROR_SERVICE_NOT_IN_EXE:
		return `ERROR_SERVICE_NOT_IN_EXE`
	case ERROR_SHUTDOWN_IN_PROGRESS:
		return `ERROR_SHUTDOWN_IN_PROGRESS`
	case ERROR_PROCESS_ABORTED:
		return `ERROR_PROCESS_ABORTED`
	case ERROR_EXCEPTION_IN_SERVICE:
		return `ERROR_EXCEPTION_IN_SERVICE`
	case ERROR_SERVICE_SPECIFIC_ERROR:
		return `ERROR_SERVICE_SPECIFIC_ERROR`
	case ERROR_SERVICE_NEVER_STARTED:
		return `ERROR_SERVICE_NEVER_STARTED`
	case ERROR_DUPLICATE_SERVICE_NAME:
		return `ERROR_DUPLICATE_SERVICE_NAME`
	case ERROR_DIFFERENT_SERVICE_ACCOUNT:
		return `ERROR_DIFFERENT_SERVICE_ACCOUNT`
	case ERROR_INVALID_SERVICE_LOCK:
		return `ERROR_INVALID_SERVICE_LOCK`
	default:
		return ``
	}
}

func (e SystemError) String() string {
	return fmt.Sprintf("[%s] %s", e.ErrorName(), e.ErrorDesc())
}
