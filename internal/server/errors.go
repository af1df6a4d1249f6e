// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means there is no router or no listen address.
var errNoServersAreCreated = errors.New("no servers are created: HTTP handler and address are required")
