// Package commands defines the remotesms CLI and wires dependencies for subcommands.
//
// Commands
//
//   - setup           Configure password, recovery code and registered phone
//   - otp             Send a one-time reset code to the registered phone
//   - reset-password  Replace the password using the recovery code or an OTP
//   - grant, revoke   Change capability grants
//   - grants          List capability grants
//   - serve           Poll the gateway and execute inbound commands
//   - send, recv      Operator side: send a command, read replies
//   - seed            Add call-log and SMS rows to the telephony database
//   - fix             Record a last-known location fix
//
// # Implementation
//
// The root command loads configuration through viper (flags, REMOTESMS_*
// environment, config.toml) and builds the dependency graph before any
// subcommand runs.
package commands
