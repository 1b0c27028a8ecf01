// Package config provides configuration management for custview.
//
// Configuration is loaded and merged in the following order, later sources
// overriding earlier ones:
//
//  1. Built-in defaults
//  2. User configuration (~/.config/custview/config.yaml)
//  3. Project configuration (./.custview/config.yaml)
//  4. Environment, after reading ./.env if present
//     (CUSTVIEW_API_URL, CUSTVIEW_TIMEOUT, CUSTVIEW_LOG_LEVEL)
//
// Command-line flags are applied on top by the cmd package.
//
// Example file:
//
//	api:
//	  url: "http://localhost:5000"
//	  timeout: 30s
//	ui:
//	  colorMode: dark
//	  emailField: "メールアドレス"
//	  logLevel: info
//	selfUpdate:
//	  repository: "custview/custview"
package config
