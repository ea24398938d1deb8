// Package config loads texty's settings.
//
// Settings are layered with koanf, each layer overriding the previous one
// key by key:
//
//  1. the defaults embedded in the binary (embedded/defaults.toml)
//  2. a user file: an explicit path, or texty/config.toml (or .yaml) in
//     the XDG config directories
//  3. TEXTY_* environment variables, TEXTY_RENDER_WIDTH=80 sets render.width
//  4. overrides supplied by the caller, usually command line flags
package config
