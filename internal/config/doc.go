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

// Package config loads the run configuration from flags, environment and an
// optional YAML file.
//
// Sources are merged by viper, highest precedence first:
//
//  1. command-line flags that were explicitly set
//  2. ASSIGN_* environment variables (ASSIGN_MULT, ASSIGN_NUM_SLOTS, ...)
//  3. the file named by --config
//  4. flag defaults
//
// Example configuration file:
//
//	mult: 4
//	power: 2
//	num-slots: 12
//	output: yaml
package config
