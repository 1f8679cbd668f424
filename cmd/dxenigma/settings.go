/*
   Copyright 2025 The DIRPX Authors

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

package main

import (
	"fmt"
	"strings"

	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/semver"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	flags := &machineFlags{}
	var format string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the resolved machine settings",
		Long: `Resolve the machine settings exactly as encrypt would (--config plus
flag overrides) and print them as a settings document. The output contains
the start positions and plug pairs and can be saved for use with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			if s.Schema.IsZero() {
				s.Schema = semver.CurrentSchema
			}

			var data []byte
			switch strings.ToLower(format) {
			case "yaml", "":
				data, err = model.ToYAML(s)
			case "json":
				data, err = model.ToJSON(s)
				if err == nil {
					data = append(data, '\n')
				}
			default:
				return fmt.Errorf("unknown settings format %q", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml, json)")
	return cmd
}
