// SPDX-License-Identifier: GPL-3.0-only

package models

import "time"

type StatusCode struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt time.Time
}

func init() {
	AllModels = append(AllModels, &StatusCode{})
}
