/**
 * Copyright 2026 The Symtree Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultMaxParseDepth bounds expression nesting during parsing.
const DefaultMaxParseDepth = 10000

// Config defines the configuration settings for a symtree engine.
type Config struct {
	// MaxParseDepth is the maximum expression nesting depth the parser accepts.
	// Zero falls back to DefaultMaxParseDepth.
	MaxParseDepth int `yaml:"maxParseDepth"`

	// Logging config
	LogParseTrace bool
}

// NewDefaultConfig returns a new default engine configuration.
func NewDefaultConfig() *Config {
	return &Config{
		MaxParseDepth: DefaultMaxParseDepth,
	}
}

// Validate validates a Config and returns an error if it's invalid.
func (conf *Config) Validate() error {
	if conf.MaxParseDepth < 0 {
		return fmt.Errorf("invalid max parse depth provided in config")
	}
	return nil
}

// LoadFromFile loads the config from the file. It assumes that config already has the defaults.
// In the case of an error, it leaves the config untouched.
func (conf *Config) LoadFromFile(path string) {
	log.Info(fmt.Sprintf("symtree::config::LoadFromFile; loading config from file %s", path))
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(fmt.Sprintf("symtree::config::LoadFromFile; error reading config from file %s, error %s", path, err))
		return
	}
	fconf := Config{}
	err = yaml.Unmarshal(data, &fconf)
	if err != nil {
		log.Error(fmt.Sprintf("symtree::config::LoadFromFile; error unmarshalling config from file %s, error %s", path, err))
		return
	}

	log.WithFields(log.Fields{"config": fconf}).Debug("symtree::config::LoadFromFile; read contents from the file")

	// populate fields
	if fconf.MaxParseDepth != 0 {
		conf.MaxParseDepth = fconf.MaxParseDepth
	}
	if fconf.LogParseTrace {
		conf.LogParseTrace = true
	}
}
