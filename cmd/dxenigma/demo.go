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

	"dirpx.dev/dxenigma/dxcore/machine"
	"dirpx.dev/dxenigma/dxcore/model/reflector"
	"dirpx.dev/dxenigma/dxcore/model/rotor"
	"github.com/spf13/cobra"
)

const demoText = "HELLOWORLD"

func newDemoCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Encrypt and decrypt a sample message",
		Long: `Build two identical machines (rotors I, II, III, reflector A, positions
AAA, plugs AB CD), encrypt HELLOWORLD on the first and decrypt the result on
the second.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}

			sender, err := demoMachine(machine.WithLogger(logger))
			if err != nil {
				return err
			}
			receiver := sender.Clone()

			cipher, err := sender.EncryptString(demoText)
			if err != nil {
				return err
			}
			plain, err := receiver.EncryptString(cipher)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plaintext:  %s\n", demoText)
			fmt.Fprintf(out, "Ciphertext: %s\n", cipher)
			fmt.Fprintf(out, "Decrypted:  %s\n", plain)
			if plain != demoText {
				return fmt.Errorf("round trip failed: got %q", plain)
			}
			return nil
		},
	}
}

func demoMachine(opts ...machine.Option) (*machine.Machine, error) {
	m, err := machine.New(rotor.I, rotor.II, rotor.III, reflector.A, 'A', 'A', 'A', opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range [...][2]rune{{'A', 'B'}, {'C', 'D'}} {
		if err := m.SetPlugs(p[0], p[1]); err != nil {
			return nil, err
		}
	}
	return m, nil
}
