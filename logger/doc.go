// Package logger provides structured logging built on zerolog.
//
// A single global logger is initialized once at startup from Config; request
// handlers and services derive component-tagged children from it:
//
//	logger.Init(cfg.Log)
//	log := logger.WithComponent("auth")
//	log.Info("Login accepted", logger.Fields("user_id", id))
//
// Fields are passed as map[string]interface{}; the Fields helper builds one
// from alternating key-value pairs.
package logger
