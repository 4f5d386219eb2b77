// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package store

const (
	upsertCategory = `
		INSERT INTO categories (
			id,
			name,
			icon,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name       = excluded.name,
			icon       = excluded.icon,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`

	upsertService = `
		INSERT INTO services (
			id,
			category_id,
			name,
			price,
			description,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category_id = excluded.category_id,
			name        = excluded.name,
			price       = excluded.price,
			description = excluded.description,
			created_at  = excluded.created_at,
			updated_at  = excluded.updated_at;`

	deleteAllServices = `DELETE FROM services;`

	deleteAllCategories = `DELETE FROM categories;`

	getJoinedServices = `
		SELECT
			services.id,
			services.category_id,
			services.name,
			services.price,
			services.description,
			services.created_at,
			services.updated_at,
			categories.name AS category_name,
			categories.icon AS category_icon
		FROM services
		LEFT JOIN categories ON services.category_id = categories.id
		ORDER BY categories.name, services.name;`

	getAllCategories = `
		SELECT
			id,
			name,
			icon,
			created_at,
			updated_at
		FROM categories
		ORDER BY name;`

	getServicesByCategory = `
		SELECT
			id,
			category_id,
			name,
			price,
			description,
			created_at,
			updated_at
		FROM services
		WHERE category_id = ?
		ORDER BY name;`

	hasAnyCategory = `SELECT EXISTS(SELECT 1 FROM categories);`
)
