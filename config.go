// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/kinds"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type TreeConfig struct {
	Kind   string   `yaml:"kind"`
	Orders []string `yaml:"orders"`
}

type DisplayConfig struct {
	Diagram bool `yaml:"diagram"`
	Verify  bool `yaml:"verify"`
}

type BenchConfig struct {
	Size         int    `yaml:"size"`
	Pattern      string `yaml:"pattern"`
	ShowProgress bool   `yaml:"show_progress"`
}

type SessionSettings struct {
	ExpectedValues    uint    `yaml:"expected_values"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type Config struct {
	Tree    TreeConfig      `yaml:"tree"`
	Display DisplayConfig   `yaml:"display"`
	Bench   BenchConfig     `yaml:"bench"`
	Session SessionSettings `yaml:"session"`
}

func defaultConfig() Config {
	return Config{
		Tree: TreeConfig{
			Kind:   kinds.AutoKind,
			Orders: []string{"inorder", "preorder", "postorder"},
		},
		Display: DisplayConfig{
			Diagram: true,
		},
		Bench: BenchConfig{
			Size:         1000,
			Pattern:      patternAscending,
			ShowProgress: true,
		},
		Session: SessionSettings{
			ExpectedValues:    kinds.DefaultExpectedValues,
			FalsePositiveRate: kinds.DefaultFalsePositiveRate,
		},
	}
}

// LoadConfig reads ~/.avltree.yaml. A missing or broken file yields the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	// Fields absent from the file keep their defaults.
	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// TraversalOrders parses the configured traversal names.
func (c *Config) TraversalOrders() ([]avl.Order, error) {
	return parseOrders(c.Tree.Orders)
}

func parseOrders(names []string) ([]avl.Order, error) {
	if len(names) == 0 {
		return avl.Orders, nil
	}
	orders := make([]avl.Order, 0, len(names))
	for _, name := range names {
		o, err := avl.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Config) SessionConfig() kinds.SessionConfig {
	return kinds.SessionConfig{
		ExpectedValues:    c.Session.ExpectedValues,
		FalsePositiveRate: c.Session.FalsePositiveRate,
	}
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ %sFailed to get config path: %v%s\n", Error, err, Reset)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 %sConfiguration file not found.%s Creating default configuration...\n\n", Warning, Reset)

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ %sFailed to create default config file: %v%s\n", Error, err, Reset)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ %sFailed to load configuration: %v%s\n", Error, err, Reset)
		return
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %skind%s: %s\n", Green, Reset, config.Tree.Kind)
	fmt.Printf("  • %sorders%s: %s\n\n", Green, Reset, strings.Join(config.Tree.Orders, ", "))

	fmt.Printf("🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sdiagram%s: %t\n", Green, Reset, config.Display.Diagram)
	fmt.Printf("  • %sverify%s: %t\n\n", Green, Reset, config.Display.Verify)

	fmt.Printf("⏱  %sBench:%s\n", Green, Reset)
	fmt.Printf("  • %ssize%s: %d\n", Green, Reset, config.Bench.Size)
	fmt.Printf("  • %spattern%s: %s\n", Green, Reset, config.Bench.Pattern)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.Bench.ShowProgress)

	fmt.Printf("🔍 %sSession:%s\n", Green, Reset)
	fmt.Printf("  • %sexpected_values%s: %d\n", Green, Reset, config.Session.ExpectedValues)
	fmt.Printf("  • %sfalse_positive_rate%s: %g\n\n", Green, Reset, config.Session.FalsePositiveRate)

	fmt.Printf("💡 %sSupported kinds%s: auto, %s\n", Info, Reset, strings.Join(kinds.NewManager().Names(), ", "))
}
