// file: internals/features/academics/semesters/controller/semester_structure_controller.go
package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/academics/semesters/dto"
	model "kampusku_backend/internals/features/academics/semesters/model"
	service "kampusku_backend/internals/features/academics/semesters/service"
	helper "kampusku_backend/internals/helpers"
	auth "kampusku_backend/internals/middlewares/auth"
)

/* ============================================
   STRUCTURE
   GET /api/a/semesters/:degree_code/structures
   PUT /api/a/semesters/:degree_code/structure

   Edits on a target that already has semester rows are deferred to the
   approval queue with a before/after payload. Rebuild is never implied,
   callers trigger it separately once the edit lands.
============================================ */

func (ctl *SemesterAdminController) ListStructures(c *fiber.Ctx) error {
	degreeCode, err := degreeCodeParam(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	var list []model.SemesterStructureModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("semester_structure_degree_code = ?", degreeCode).
		Order("semester_structure_level ASC, semester_structure_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load structures")
	}
	out := make([]dto.SemesterStructureResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, dto.StructureFromModel(it))
	}
	return helper.JsonOK(c, "OK", out)
}

func (ctl *SemesterAdminController) UpsertStructure(c *fiber.Ctx) error {
	degreeCode, err := degreeCodeParam(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	var p dto.SemesterStructureUpsertDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()
	if p.SemesterStructureLevel == model.BindingDegree && p.SemesterStructureTargetID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Degree-level structures must not carry a target id")
	}
	if p.SemesterStructureLevel != model.BindingDegree && p.SemesterStructureTargetID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Program and branch structures require a target id")
	}

	var (
		deferred bool
		out      model.SemesterStructureModel
	)
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		existing, err := service.NewGormStructureReader(tx).
			Find(c.UserContext(), p.SemesterStructureLevel, degreeCode, p.SemesterStructureTargetID)
		if err != nil {
			return err
		}

		var before map[string]int
		if existing != nil {
			before = map[string]int{
				"years":          existing.SemesterStructureYears,
				"terms_per_year": existing.SemesterStructureTermsPerYear,
			}
		}
		programID, branchID := structureScope(p.SemesterStructureLevel, p.SemesterStructureTargetID)

		res, err := ctl.guardFor(tx).Apply(c.UserContext(), service.GuardRequest{
			DegreeCode: degreeCode,
			Action:     service.ActionEditStructure,
			ProgramID:  programID,
			BranchID:   branchID,
			Before:     before,
			After: map[string]int{
				"years":          p.SemesterStructureYears,
				"terms_per_year": p.SemesterStructureTermsPerYear,
			},
			RequesterEmail: auth.RequesterEmail(c),
			ReasonNote:     p.ReasonNote,
		}, func(ctx context.Context) (int, error) {
			if existing == nil {
				out = model.SemesterStructureModel{
					SemesterStructureLevel:        p.SemesterStructureLevel,
					SemesterStructureDegreeCode:   degreeCode,
					SemesterStructureTargetID:     p.SemesterStructureTargetID,
					SemesterStructureYears:        p.SemesterStructureYears,
					SemesterStructureTermsPerYear: p.SemesterStructureTermsPerYear,
				}
				return 1, tx.Create(&out).Error
			}
			existing.SemesterStructureYears = p.SemesterStructureYears
			existing.SemesterStructureTermsPerYear = p.SemesterStructureTermsPerYear
			out = *existing
			return 1, tx.Save(existing).Error
		})
		if err != nil {
			return err
		}
		deferred = res.Deferred
		return nil
	})
	if err != nil {
		return jsonTxError(c, err, "Failed to save structure")
	}
	if deferred {
		return helper.JsonDeferred(c, "Structure edit submitted for approval", fiber.Map{
			"semester_structure_degree_code": degreeCode,
		})
	}
	return helper.JsonUpdated(c, "Structure saved", dto.StructureFromModel(out))
}

func structureScope(level string, targetID *uuid.UUID) (programID, branchID *uuid.UUID) {
	switch level {
	case model.BindingProgram:
		return targetID, nil
	case model.BindingBranch:
		return nil, targetID
	}
	return nil, nil
}

/* ============================================
   REBUILD / CLEAR
   POST   /api/a/semesters/:degree_code/rebuild
   DELETE /api/a/semesters/:degree_code
============================================ */

func (ctl *SemesterAdminController) Rebuild(c *fiber.Ctx) error {
	degreeCode, err := degreeCodeParam(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	var p dto.SemesterRebuildDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var result dto.RebuildResultDTO
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		binding, _, err := loadBinding(tx, degreeCode)
		if err != nil {
			return err
		}

		action := service.ActionRebuildAll
		var programID, branchID *uuid.UUID
		if p.TargetID != nil {
			action = service.ActionRebuild
			programID, branchID = structureScope(binding.SemesterBindingMode, p.TargetID)
		}

		res, err := ctl.guardFor(tx).Apply(c.UserContext(), service.GuardRequest{
			DegreeCode:     degreeCode,
			Action:         action,
			ProgramID:      programID,
			BranchID:       branchID,
			After:          map[string]string{"binding_mode": binding.SemesterBindingMode},
			RequesterEmail: auth.RequesterEmail(c),
			ReasonNote:     p.ReasonNote,
		}, func(ctx context.Context) (int, error) {
			return ctl.materializerFor(tx).Rebuild(ctx, service.RebuildInput{
				DegreeCode:  degreeCode,
				BindingMode: binding.SemesterBindingMode,
				LabelMode:   binding.SemesterBindingLabelMode,
				TargetID:    p.TargetID,
			})
		})
		if err != nil {
			return err
		}
		result = dto.RebuildResultDTO{Deferred: res.Deferred, Rows: res.Affected}
		return nil
	})
	if err != nil {
		return jsonTxError(c, err, "Failed to rebuild semesters")
	}
	if result.Deferred {
		return helper.JsonDeferred(c, "Rebuild submitted for approval", result)
	}
	return helper.JsonOK(c, "Semesters rebuilt", result)
}

func (ctl *SemesterAdminController) ClearAll(c *fiber.Ctx) error {
	degreeCode, err := degreeCodeParam(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	var p dto.SemesterRebuildDTO
	if len(c.Body()) > 0 {
		if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
			return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
		}
	}

	var result dto.RebuildResultDTO
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res, err := ctl.guardFor(tx).Apply(c.UserContext(), service.GuardRequest{
			DegreeCode:     degreeCode,
			Action:         service.ActionClearAll,
			RequesterEmail: auth.RequesterEmail(c),
			ReasonNote:     p.ReasonNote,
		}, func(ctx context.Context) (int, error) {
			return ctl.materializerFor(tx).Clear(ctx, degreeCode)
		})
		if err != nil {
			return err
		}
		result = dto.RebuildResultDTO{Deferred: res.Deferred, Rows: res.Affected}
		return nil
	})
	if err != nil {
		return jsonTxError(c, err, "Failed to clear semesters")
	}
	if result.Deferred {
		return helper.JsonDeferred(c, "Clear-all submitted for approval", result)
	}
	return helper.JsonDeleted(c, "Semesters cleared", result)
}

/* ============================================
   LIST (public)
   GET /api/public/semesters?degree_code=...
============================================ */

func (ctl *SemesterAdminController) ListSemesters(c *fiber.Ctx) error {
	degreeCode := strings.ToUpper(strings.TrimSpace(c.Query("degree_code")))
	if degreeCode == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "degree_code is required")
	}
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SemesterModel{}).
		Where("semester_degree_code = ?", degreeCode)
	if raw := strings.TrimSpace(c.Query("program_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program_id")
		}
		q = q.Where("semester_program_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("branch_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch_id")
		}
		q = q.Where("semester_branch_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count semesters")
	}
	var list []model.SemesterModel
	if err := q.
		Order("semester_program_id ASC NULLS FIRST, semester_branch_id ASC NULLS FIRST, semester_number ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load semesters")
	}

	return helper.JsonList(c, "OK", dto.SemestersFromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
