// Package cli implements the rewear-admin command line tool.
package cli
