// Copyright 2020 Fugue, Inc.
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
package cmd

import (
	"fmt"
	"os"

	"github.com/fugue/rfc3339/format"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger *logrus.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rfc3339",
	Short: "Format unix timestamps as RFC3339 UTC strings",
	Long: `Format unix timestamps as RFC3339 UTC strings, e.g. 2015-10-21T23:29:00.123456Z.

Flags may also be set with RFC3339_ prefixed environment variables or in
~/.rfc3339.yaml. Set RFC3339_PROFILE=1 to write a CPU profile of the run to
cpuprofile.out in the working directory.`,
	Version: fmt.Sprintf("%s, build %s", Version, GitCommit),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			logger.SetLevel(logrus.DebugLevel)
		}
		logger.WithFields(logrus.Fields{
			"bounded": format.Bounded,
			"config":  viper.ConfigFileUsed(),
		}).Debug("Starting")
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cobra.OnInitialize(initConfig)

	// Flags available to all subcommands
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Directory batch file patterns are relative to")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Bind flags to environment variables if they are present
	viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {

	// Environment variables will be prefixed with "RFC3339_"
	viper.SetEnvPrefix("rfc3339")

	// Search config in home directory with name ".rfc3339" (without extension)
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".rfc3339")

	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fatal(fmt.Errorf("Failed to read config: %s", err))
		}
	}
}
