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
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/dxenigma/dxcore/machine"
	"dirpx.dev/dxenigma/dxcore/model"
	"dirpx.dev/dxenigma/dxcore/model/letter"
	"dirpx.dev/dxenigma/dxcore/model/plugboard"
	"dirpx.dev/dxenigma/dxcore/model/reflector"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
	"dirpx.dev/dxenigma/dxcore/model/settings"
	"github.com/spf13/cobra"
)

// machineFlags describe a machine on the command line.
type machineFlags struct {
	config    string
	rotors    string
	reflector string
	positions string
	plugs     string
	stepping  string
}

func newEncryptCmd(root *rootFlags) *cobra.Command {
	flags := &machineFlags{}

	cmd := &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt or decrypt text",
		Long: `Encrypt text with the configured machine. Since the machine is
reciprocal, running ciphertext through the same settings decrypts it.

Text is taken from the arguments, or from stdin when there are none.
Whitespace is ignored; any other character outside A-Z is an error.
Flags override the values read from --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}

			s, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			logger.Info("machine settings", "settings", model.SafeString(s, false))

			m, err := machine.NewFromSettings(s, machine.WithLogger(logger))
			if err != nil {
				return err
			}

			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out, err := m.EncryptString(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (f *machineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "settings file (YAML or JSON)")
	cmd.Flags().StringVar(&f.rotors, "rotors", "I,II,III", "rotor types, fastest first")
	cmd.Flags().StringVar(&f.reflector, "reflector", "A", "reflector type (A, B, C)")
	cmd.Flags().StringVar(&f.positions, "positions", "AAA", "rotor start positions, fastest first")
	cmd.Flags().StringVar(&f.plugs, "plugs", "", "plug pairs, for example AB,CD")
	cmd.Flags().StringVar(&f.stepping, "stepping", model.SingleCarryStr, "stepping mode (single-carry, double-step)")
}

// settings loads --config when given and applies every flag the user set.
// Without --config the flag defaults describe the machine.
func (f *machineFlags) settings(cmd *cobra.Command) (settings.Settings, error) {
	var s settings.Settings
	fromFile := f.config != ""
	if fromFile {
		loaded, err := settings.Load(f.config)
		if err != nil {
			return settings.Settings{}, err
		}
		s = loaded
	}

	use := func(name string) bool {
		return !fromFile || cmd.Flags().Changed(name)
	}

	if use("rotors") {
		rotors, err := parseRotors(f.rotors)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Rotors = rotors
	}
	if use("reflector") {
		refl, err := reflector.ParseType(f.reflector)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Reflector = refl
	}
	if use("positions") {
		positions, err := parsePositions(f.positions)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Positions = positions
	}
	if use("plugs") {
		plugs, err := plugboard.ParsePairs(f.plugs)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Plugs = plugs
	}
	if use("stepping") {
		stepping, err := model.ParseStepping(f.stepping)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Stepping = stepping
	}

	if err := s.Validate(); err != nil {
		return settings.Settings{}, fmt.Errorf("invalid machine settings: %w", err)
	}
	return s, nil
}

func parseRotors(s string) ([]rotor.Type, error) {
	var rotors []rotor.Type
	for _, part := range strings.Split(s, ",") {
		t, err := rotor.ParseType(part)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, t)
	}
	return rotors, nil
}

func parsePositions(s string) ([]letter.Letter, error) {
	positions := make([]letter.Letter, 0, utf8.RuneCountInString(s))
	for _, r := range strings.TrimSpace(s) {
		l, err := letter.Parse(r)
		if err != nil {
			return nil, err
		}
		positions = append(positions, l)
	}
	return positions, nil
}

// inputText joins the arguments, or reads stdin when there are none, and
// drops all whitespace.
func inputText(stdin io.Reader, args []string) (string, error) {
	raw := strings.Join(args, "")
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		raw = string(data)
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw), nil
}
