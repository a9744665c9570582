// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/avatar-dashboard/models"

// userKey is a normalised user id: unset and null ids share the zero key.
type userKey struct {
	present bool
	id      string
}

func keyOf(userID models.Optional[string]) userKey {
	id, ok := userID.Get()
	return userKey{present: ok, id: id}
}

// AggregateClients joins clients with avatars. The result holds one view per
// client in input order. AvatarCount counts avatars whose user id equals the
// client's user id, where a missing id on both sides is a match.
// HasCredentials is derived from the client's own key only.
func AggregateClients(clients []models.Client, avatars []models.Avatar) []models.ClientView {
	counts := make(map[userKey]int, len(avatars))
	for _, avatar := range avatars {
		counts[keyOf(avatar.UserID)]++
	}

	views := make([]models.ClientView, 0, len(clients))
	for i := range clients {
		views = append(views, models.ClientView{
			Client:         clients[i],
			AvatarCount:    counts[keyOf(clients[i].UserID)],
			HasCredentials: models.IsConfigured(&clients[i]),
		})
	}

	return views
}

// SummarizeClients computes the dashboard metric cards. totalAvatars counts
// every avatar record, owned by a listed client or not.
func SummarizeClients(views []models.ClientView, totalAvatars int) models.DashboardSummary {
	summary := models.DashboardSummary{
		TotalClients: len(views),
		TotalAvatars: totalAvatars,
	}

	for _, view := range views {
		if view.HasCredentials {
			summary.ConfiguredClients++
		}
	}
	summary.UnconfiguredClients = summary.TotalClients - summary.ConfiguredClients

	return summary
}
