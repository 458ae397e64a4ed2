// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BodyPart is a user defined region of the body (e.g. "legs").
type BodyPart struct {
	Owned

	Name string `json:"name"`
}

func (b *BodyPart) TableName() string { return "body_parts" }
func (b *BodyPart) Fields() []string  { return []string{"name"} }
func (b *BodyPart) Values() []any     { return []any{b.Name} }
func (b *BodyPart) Targets() []any    { return []any{&b.Name} }

// MuscleGroup belongs to a BodyPart (e.g. "quadriceps" → "legs").
type MuscleGroup struct {
	Owned

	Name       string `json:"name"`
	BodyPartID int64  `json:"body_part_id"`
}

func (m *MuscleGroup) TableName() string { return "muscle_groups" }
func (m *MuscleGroup) Fields() []string  { return []string{"name", "body_part_id"} }
func (m *MuscleGroup) Values() []any     { return []any{m.Name, m.BodyPartID} }
func (m *MuscleGroup) Targets() []any    { return []any{&m.Name, &m.BodyPartID} }

// Exercise trains a MuscleGroup.
type Exercise struct {
	Owned

	Name          string `json:"name"`
	Description   string `json:"description"`
	MuscleGroupID int64  `json:"muscle_group_id"`
}

func (e *Exercise) TableName() string { return "exercises" }
func (e *Exercise) Fields() []string {
	return []string{"name", "description", "muscle_group_id"}
}
func (e *Exercise) Values() []any  { return []any{e.Name, e.Description, e.MuscleGroupID} }
func (e *Exercise) Targets() []any { return []any{&e.Name, &e.Description, &e.MuscleGroupID} }

// Meal is a single logged meal with its macronutrients in grams.
type Meal struct {
	Owned

	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}

func (m *Meal) TableName() string { return "meals" }
func (m *Meal) Fields() []string {
	return []string{"name", "date", "calories", "protein", "carbs", "fat"}
}
func (m *Meal) Values() []any {
	return []any{m.Name, m.Date, m.Calories, m.Protein, m.Carbs, m.Fat}
}
func (m *Meal) Targets() []any {
	return []any{&m.Name, &m.Date, &m.Calories, &m.Protein, &m.Carbs, &m.Fat}
}

// BodyComposition is a dated body measurement. Weight and MuscleMass are in
// kilograms, BodyFat is a percentage.
type BodyComposition struct {
	Owned

	Date       time.Time `json:"date"`
	Weight     float64   `json:"weight"`
	BodyFat    float64   `json:"body_fat"`
	MuscleMass float64   `json:"muscle_mass"`
}

func (b *BodyComposition) TableName() string { return "body_compositions" }
func (b *BodyComposition) Fields() []string {
	return []string{"date", "weight", "body_fat", "muscle_mass"}
}
func (b *BodyComposition) Values() []any {
	return []any{b.Date, b.Weight, b.BodyFat, b.MuscleMass}
}
func (b *BodyComposition) Targets() []any {
	return []any{&b.Date, &b.Weight, &b.BodyFat, &b.MuscleMass}
}
