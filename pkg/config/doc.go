// Package config loads dashaudit settings from an optional YAML file and
// DASHAUDIT_* environment variables.
//
// Keys are dotted paths; the matching environment variable upper-cases the
// key and replaces dots with underscores:
//
//	store.backend       DASHAUDIT_STORE_BACKEND
//	store.mongo.uri     DASHAUDIT_STORE_MONGO_URI
//	server.port         DASHAUDIT_SERVER_PORT
//
// Environment variables override the file, which overrides the defaults.
package config
