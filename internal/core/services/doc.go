// Package services implements the core business logic behind the
// driving ports: scoring, history, preprocessing and settings.
package services
