// Copyright 2025 Alehson Team.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ApplicationsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "alehson_applications_submitted_total",
	Help: "Number of aid applications submitted, labeled by region",
}, []string{"region"})

var ApplicationStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "alehson_application_status_changes_total",
	Help: "Number of application status transitions, labeled by target status",
}, []string{"status"})

var TelegramNotificationErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "alehson_telegram_notification_errors_total",
	Help: "Number of failed telegram notification pushes",
})

var ImageUploads = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "alehson_image_uploads_total",
	Help: "Number of attachment uploads to the external image host, labeled by outcome",
}, []string{"outcome"})

var BlogHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "alehson_blog_hits_total",
	Help: "Number of blog detail retrievals",
})
