// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package doc embeds the Open API description of the HTTP API.
package doc

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

// TxgateYAML is the Open API document.
//
//go:embed txgate.yaml
var TxgateYAML []byte

var version string

// Version open api version
func Version() string {
	return version
}

type openAPIInfo struct {
	Info struct {
		Version string
	}
}

func init() {
	var oai openAPIInfo
	if err := yaml.Unmarshal(TxgateYAML, &oai); err != nil {
		panic(err)
	}
	version = oai.Info.Version
}
