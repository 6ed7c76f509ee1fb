// Command server runs the ToDo list HTTP API.
//
// Configuration is read from the environment, see package config. With STORE_DRIVER=memory the
// server runs without a database, which is handy for local frontend development.
package main
