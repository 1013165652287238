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

// Package logging configures the structured logger used across the pipeline.
//
// Loggers are logr.Logger values backed by zap through controller-runtime's zap
// helpers. They travel in the context (ctrl.LoggerInto / ctrl.LoggerFrom) so that
// every stage logs with the same sink and verbosity.
package logging

import (
	"flag"
	"io"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	crzap "sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Verbosity levels for logger.V(...).
const (
	DEBUG = 1
	TRACE = 2
)

// DefaultLevel keeps a CLI run quiet unless something goes wrong.
var DefaultLevel = zapcore.ErrorLevel

// BindFlags registers the --zap-* flags on fs and returns the options they fill.
func BindFlags(fs *flag.FlagSet) *crzap.Options {
	opts := &crzap.Options{
		Level: DefaultLevel,
	}
	opts.BindFlags(fs)
	return opts
}

// NewLogger builds a logger from opts writing to w and installs it as the
// controller-runtime global logger.
func NewLogger(opts *crzap.Options, w io.Writer) logr.Logger {
	if opts == nil {
		opts = &crzap.Options{Level: DefaultLevel}
	}
	logger := crzap.New(crzap.UseFlagOptions(opts), crzap.WriteTo(w))
	ctrl.SetLogger(logger)
	return logger
}
