/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logtest provides the logger used by ginkgo test suites.
package logtest

import (
	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	crzap "sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/samueltardieu/assignments/internal/logging"
)

// NewTestLogger installs a development logger writing to the Ginkgo output, with
// every verbosity up to logging.TRACE enabled.
func NewTestLogger() logr.Logger {
	logger := crzap.New(
		crzap.WriteTo(ginkgo.GinkgoWriter),
		crzap.UseDevMode(true),
		crzap.Level(zapcore.Level(-logging.TRACE)),
	)
	ctrl.SetLogger(logger)
	return logger
}
