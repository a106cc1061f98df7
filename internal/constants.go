/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent     = "bridgescore/0.3.0 (+https://github.com/mikeb26/bridgescore)"
	ScoresBucket  = "bopmatic-bridgescore-prod-scores"
	SessionPrefix = "sessions"
	ArchivePrefix = "archive"
)
