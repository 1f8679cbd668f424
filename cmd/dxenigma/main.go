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

// Command dxenigma encrypts and decrypts text with a simulated three-rotor
// cipher machine.
//
// Usage:
//
//	# Encrypt with rotors I, II, III, reflector A and plugs AB CD
//	dxenigma encrypt --rotors I,II,III --reflector A --positions AAA --plugs AB,CD HELLOWORLD
//
//	# Build the machine from a settings file and read text from stdin
//	echo HELLOWORLD | dxenigma encrypt --config machine.yaml
//
//	# Run the round-trip demonstration
//	dxenigma demo
//
// Encryption is its own inverse: feeding the ciphertext to a machine with the
// same settings returns the plaintext.
package main

func main() {
	Execute()
}
