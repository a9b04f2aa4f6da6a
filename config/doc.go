// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading and persistence helpers for
// StudyGenie. It uses Viper for file/env/flag parsing and writes files with
// go-yaml.
package config
