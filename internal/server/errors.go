// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when the configuration enables neither
// transport.
var errNoServersAreCreated = errors.New("no servers are created")
