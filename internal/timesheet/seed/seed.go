// Package seed holds the demo dataset: project Alfa in November 2025, two
// holidays and the ten-member roster.
package seed

import (
	"context"
	"fmt"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/repository"
)

// DisplayedYear and DisplayedMonth are the month the demo data is centred on.
const (
	DisplayedYear  = 2025
	DisplayedMonth = 11
)

// Entries returns a fresh copy of the demo rows. Legacy ids repeat on purpose:
// the October rows restart the numbering.
func Entries() []model.TaskEntry {
	return []model.TaskEntry{
		{LegacyID: 1, UserID: 1, UserName: "Daniel", CostCenter: "IT", Project: "Alfa", TaskName: "Planificación", StartDate: "2025-11-10", EndDate: "2025-11-10", Hours: 4, Detail: "Planificación del sprint"},
		{LegacyID: 2, UserID: 1, UserName: "Daniel", CostCenter: "IT", Project: "Alfa", TaskName: "Testing/Pruebas", StartDate: "2025-11-10", EndDate: "2025-11-10", Hours: 4, Detail: "Testing de funcionalidades"},
		{LegacyID: 3, UserID: 0, UserName: "", CostCenter: "HR", Project: "Administración", TaskName: "Puente turístico no laborable", StartDate: "2025-11-21", EndDate: "2025-11-21", Hours: 0, Detail: "Día no laborable"},
		{LegacyID: 4, UserID: 0, UserName: "", CostCenter: "HR", Project: "Administración", TaskName: "Día de la Soberanía Nacional", StartDate: "2025-11-24", EndDate: "2025-11-24", Hours: 0, Detail: "Feriado nacional"},
		{LegacyID: 5, UserID: 2, UserName: "Juan", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-11", EndDate: "2025-11-11", Hours: 8, Detail: "Análisis de requerimientos módulo A"},
		{LegacyID: 6, UserID: 2, UserName: "Juan", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-12", EndDate: "2025-11-12", Hours: 8, Detail: "Desarrollo backend API"},
		{LegacyID: 7, UserID: 2, UserName: "Juan", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-13", EndDate: "2025-11-13", Hours: 6, Detail: "Corrección de bugs"},
		{LegacyID: 8, UserID: 2, UserName: "Juan", CostCenter: "IT", Project: "Alfa", TaskName: "Implementación", StartDate: "2025-11-14", EndDate: "2025-11-14", Hours: 4, Detail: "Deploy en ambiente Q&A"},
		{LegacyID: 9, UserID: 2, UserName: "Juan", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-17", EndDate: "2025-11-17", Hours: 8, Detail: "Revisión de GAPs funcional"},
		{LegacyID: 10, UserID: 3, UserName: "María", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-11", EndDate: "2025-11-11", Hours: 8, Detail: "Análisis funcional módulo B"},
		{LegacyID: 11, UserID: 3, UserName: "María", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-12", EndDate: "2025-11-12", Hours: 8, Detail: "Desarrollo frontend"},
		{LegacyID: 12, UserID: 3, UserName: "María", CostCenter: "IT", Project: "Alfa", TaskName: "Implementación", StartDate: "2025-11-13", EndDate: "2025-11-13", Hours: 8, Detail: "Pase a producción release 1.2"},
		{LegacyID: 13, UserID: 3, UserName: "María", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-14", EndDate: "2025-11-14", Hours: 8, Detail: "Pruebas unitarias"},
		{LegacyID: 14, UserID: 3, UserName: "María", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-17", EndDate: "2025-11-17", Hours: 4, Detail: "Reunión de relevamiento con cliente"},
		{LegacyID: 15, UserID: 4, UserName: "Nicolás", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-11", EndDate: "2025-11-11", Hours: 8, Detail: "Desarrollo integración API externa"},
		{LegacyID: 16, UserID: 4, UserName: "Nicolás", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-12", EndDate: "2025-11-12", Hours: 8, Detail: "Refactor de código"},
		{LegacyID: 17, UserID: 4, UserName: "Nicolás", CostCenter: "IT", Project: "Alfa", TaskName: "Implementación", StartDate: "2025-11-13", EndDate: "2025-11-13", Hours: 4, Detail: "Configuración de servidor"},
		{LegacyID: 18, UserID: 4, UserName: "Nicolás", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-14", EndDate: "2025-11-14", Hours: 8, Detail: "Definición de arquitectura"},
		{LegacyID: 19, UserID: 4, UserName: "Nicolás", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-17", EndDate: "2025-11-17", Hours: 8, Detail: "Desarrollo módulo C"},
		{LegacyID: 20, UserID: 5, UserName: "Natalia", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-18", EndDate: "2025-11-18", Hours: 8, Detail: "Análisis de base de datos"},
		{LegacyID: 21, UserID: 5, UserName: "Natalia", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-19", EndDate: "2025-11-19", Hours: 8, Detail: "Creación de scripts de migración"},
		{LegacyID: 22, UserID: 5, UserName: "Natalia", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-20", EndDate: "2025-11-20", Hours: 8, Detail: "Optimización de consultas SQL"},
		{LegacyID: 23, UserID: 5, UserName: "Natalia", CostCenter: "IT", Project: "Alfa", TaskName: "Implementación", StartDate: "2025-11-25", EndDate: "2025-11-25", Hours: 6, Detail: "Ejecución de migración de datos"},
		{LegacyID: 24, UserID: 5, UserName: "Natalia", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-26", EndDate: "2025-11-26", Hours: 8, Detail: "Revisión de modelo entidad-relación"},
		{LegacyID: 25, UserID: 6, UserName: "Borja", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-18", EndDate: "2025-11-18", Hours: 8, Detail: "Maquetación HTML/CSS"},
		{LegacyID: 26, UserID: 6, UserName: "Borja", CostCenter: "IT", Project: "Alfa", TaskName: "Implementación", StartDate: "2025-11-19", EndDate: "2025-11-19", Hours: 4, Detail: "Deploy en ambiente Staging"},
		{LegacyID: 27, UserID: 6, UserName: "Borja", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-11-20", EndDate: "2025-11-20", Hours: 8, Detail: "Análisis de usabilidad (UX/UI)"},
		{LegacyID: 28, UserID: 6, UserName: "Borja", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-25", EndDate: "2025-11-25", Hours: 8, Detail: "Implementación de diseño responsivo"},
		{LegacyID: 29, UserID: 6, UserName: "Borja", CostCenter: "IT", Project: "Alfa", TaskName: "Desarrollo", StartDate: "2025-11-26", EndDate: "2025-11-26", Hours: 8, Detail: "Ajustes de accesibilidad"},
		{LegacyID: 1, UserID: 7, UserName: "Pablo", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-10-02", EndDate: "2025-10-02", Hours: 8, Detail: "Análisis de requerimientos módulo A"},
		{LegacyID: 2, UserID: 7, UserName: "Pablo", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-10-09", EndDate: "2025-10-09", Hours: 8, Detail: "Análisis de requerimientos módulo B"},
		{LegacyID: 3, UserID: 7, UserName: "Pablo", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-10-16", EndDate: "2025-10-16", Hours: 8, Detail: "Revisión de documentación módulo A"},
		{LegacyID: 4, UserID: 7, UserName: "Pablo", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-10-23", EndDate: "2025-10-23", Hours: 8, Detail: "Reunión con equipo de desarrollo"},
		{LegacyID: 5, UserID: 7, UserName: "Pablo", CostCenter: "IT", Project: "Alfa", TaskName: "Análisis", StartDate: "2025-10-30", EndDate: "2025-10-30", Hours: 8, Detail: "Informe final de requerimientos"},
	}
}

// Assignments returns the roster of project Alfa. Daniel and Juan lead.
func Assignments() []model.Assignment {
	leader := func(id int) *int { return &id }
	return []model.Assignment{
		{UserID: 1, UserName: "Daniel", Project: "Alfa"},
		{UserID: 2, UserName: "Juan", Project: "Alfa"},
		{UserID: 3, UserName: "María", Project: "Alfa", LeaderUserID: leader(1)},
		{UserID: 4, UserName: "Nicolás", Project: "Alfa", LeaderUserID: leader(1)},
		{UserID: 5, UserName: "Natalia", Project: "Alfa", LeaderUserID: leader(2)},
		{UserID: 6, UserName: "Borja", Project: "Alfa", LeaderUserID: leader(2)},
		{UserID: 7, UserName: "Pablo", Project: "Alfa", LeaderUserID: leader(2)},
		{UserID: 8, UserName: "Ramón", Project: "Alfa", LeaderUserID: leader(2)},
		{UserID: 9, UserName: "Lucía", Project: "Alfa", LeaderUserID: leader(2)},
		{UserID: 10, UserName: "Sofía", Project: "Alfa", LeaderUserID: leader(2)},
	}
}

// Load writes the demo rows and roster into repo.
func Load(ctx context.Context, repo repository.Repository) error {
	if err := repo.SeedEntries(ctx, Entries()); err != nil {
		return fmt.Errorf("seed entries: %w", err)
	}
	if err := repo.SeedAssignments(ctx, Assignments()); err != nil {
		return fmt.Errorf("seed assignments: %w", err)
	}
	return nil
}
