package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsOrdered() {
	ve := errors.NewValidationError()
	ve.AddFieldError("set_ids", "is required")
	ve.AddFieldError("addon_count", "must be at least 0")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: addon_count: must be at least 0; set_ids: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("include_card_ids", "overlaps exclude_card_ids").
		Fieldf("addon_count", "must be at least %d", 0).
		RequiredField("set_ids")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateNonEmpty() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonEmpty("set_ids", []string{}, vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateNonEmpty("set_ids", []string{"base"}, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("addon_count", -1, 0, vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateMin("addon_count", 0, 0, vb)
	s.Assert().NoError(vb.Build())
}
