// Package config loads the settings shared by the bundle server, the reveal
// client and the encoder.
//
// Layers are merged with mergo; a non-zero field of a later layer wins:
//  1. Environment variables (APP_KDF_SALT_FILE may supply the salt)
//  2. Command-line flags, or the encoder's cobra overrides
//  3. The config file named by CONFIG or -c, JSON or YAML by extension
//
// Fields no layer sets fall back to [Defaults]. Each binary reads its own
// view: [GetServerConfig], [GetClientConfig] or [GetEncoderConfig].
package config
