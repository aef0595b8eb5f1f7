package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trainbook/internal/common/clock/mocks"
	uuidMocks "trainbook/internal/common/uuid/mocks"
	"trainbook/internal/models"
	bookingRepo "trainbook/internal/repositories/booking"
	bookingMocks "trainbook/internal/repositories/booking/mocks"
	packRepo "trainbook/internal/repositories/pack"
	packMocks "trainbook/internal/repositories/pack/mocks"
	"trainbook/internal/services/scheduling"
	schedulingMocks "trainbook/internal/services/scheduling/mocks"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockPackageRepo *packMocks.MockRepository
	mockBookingRepo *bookingMocks.MockRepository
	mockScheduler   *schedulingMocks.MockService
	mockClock       *mocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	rosterSvc       Service
	ctx             context.Context

	// Test data
	testTime       time.Time
	testClientName string
	testPackageID  string
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPackageRepo = packMocks.NewMockRepository(s.mockCtrl)
	s.mockBookingRepo = bookingMocks.NewMockRepository(s.mockCtrl)
	s.mockScheduler = schedulingMocks.NewMockService(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	s.testClientName = "Ana"
	s.testPackageID = "test-package-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	cfg := &Config{
		PackageRepo:   s.mockPackageRepo,
		BookingRepo:   s.mockBookingRepo,
		Scheduler:     s.mockScheduler,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}

	svc, err := New(cfg)
	s.Require().NoError(err)
	s.rosterSvc = svc
}

func (s *RosterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RosterServiceTestSuite) TestCreatePackage_SingleOwner() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testPackageID)

	s.mockPackageRepo.EXPECT().
		SavePackage(gomock.Any(), &packRepo.SavePackageInput{
			Package: &models.Package{
				ID:       s.testPackageID,
				Size:     10,
				Used:     0,
				AddedISO: "2024-06-05",
				Owner:    models.SingleOwner(s.testClientName),
			},
		}).
		Return(nil)

	output, err := s.rosterSvc.CreatePackage(s.ctx, &CreatePackageInput{
		ClientNames: []string{"  Ana  "},
		Size:        10,
	})

	s.Require().NoError(err)
	s.Equal(s.testPackageID, output.Package.ID)
	s.False(output.Package.Owner.Shared())
	s.Equal("2024-06-05", output.Package.AddedISO)
}

func (s *RosterServiceTestSuite) TestCreatePackage_SharedGroup() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testPackageID)

	s.mockPackageRepo.EXPECT().
		SavePackage(gomock.Any(), &packRepo.SavePackageInput{
			Package: &models.Package{
				ID:       s.testPackageID,
				Size:     20,
				Used:     0,
				AddedISO: "2024-06-05",
				Owner:    models.SharedOwner([]string{"Ana", "Bo"}),
			},
		}).
		Return(nil)

	output, err := s.rosterSvc.CreatePackage(s.ctx, &CreatePackageInput{
		ClientNames: []string{"Ana", " Bo ", "  "},
		Size:        20,
	})

	s.Require().NoError(err)
	s.True(output.Package.Owner.Shared())
	s.Equal([]string{"Ana", "Bo"}, output.Package.Owner.Names())
}

func (s *RosterServiceTestSuite) TestCreatePackage_NoNames() {
	output, err := s.rosterSvc.CreatePackage(s.ctx, &CreatePackageInput{
		ClientNames: []string{"", "   "},
		Size:        10,
	})

	s.Require().Error(err)
	s.Equal(ErrEmptyClient, err)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestCreatePackage_InvalidSize() {
	for _, size := range []int{0, -5} {
		output, err := s.rosterSvc.CreatePackage(s.ctx, &CreatePackageInput{
			ClientNames: []string{s.testClientName},
			Size:        size,
		})

		s.Require().Error(err)
		s.Equal(ErrInvalidPackageSize, err)
		s.Nil(output)
	}
}

func (s *RosterServiceTestSuite) TestDeletePackage_Exhausted() {
	s.mockPackageRepo.EXPECT().
		GetPackage(gomock.Any(), &packRepo.GetPackageInput{PackageID: s.testPackageID}).
		Return(&models.Package{
			ID:    s.testPackageID,
			Size:  5,
			Used:  5,
			Owner: models.SingleOwner(s.testClientName),
		}, nil)

	s.mockPackageRepo.EXPECT().
		DeletePackage(gomock.Any(), &packRepo.DeletePackageInput{PackageID: s.testPackageID}).
		Return(nil)

	output, err := s.rosterSvc.DeletePackage(s.ctx, &DeletePackageInput{
		PackageID: s.testPackageID,
		Confirmed: true,
	})

	s.Require().NoError(err)
	s.NotNil(output)
}

func (s *RosterServiceTestSuite) TestDeletePackage_StillActive() {
	s.mockPackageRepo.EXPECT().
		GetPackage(gomock.Any(), &packRepo.GetPackageInput{PackageID: s.testPackageID}).
		Return(&models.Package{
			ID:    s.testPackageID,
			Size:  5,
			Used:  3,
			Owner: models.SingleOwner(s.testClientName),
		}, nil)

	output, err := s.rosterSvc.DeletePackage(s.ctx, &DeletePackageInput{
		PackageID: s.testPackageID,
		Confirmed: true,
	})

	s.Require().Error(err)
	s.Equal(ErrPackageInUse, err)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestDeletePackage_Unconfirmed() {
	output, err := s.rosterSvc.DeletePackage(s.ctx, &DeletePackageInput{
		PackageID: s.testPackageID,
	})

	s.Require().Error(err)
	s.Equal(ErrConfirmationRequired, err)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestDeletePackage_NotFound() {
	s.mockPackageRepo.EXPECT().
		GetPackage(gomock.Any(), &packRepo.GetPackageInput{PackageID: "missing"}).
		Return(nil, packRepo.ErrPackageNotFound)

	output, err := s.rosterSvc.DeletePackage(s.ctx, &DeletePackageInput{
		PackageID: "missing",
		Confirmed: true,
	})

	s.Require().Error(err)
	s.Equal(ErrPackageNotFound, err)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestDeleteClient_ActivePackageBlocks() {
	s.mockPackageRepo.EXPECT().
		GetPackagesByClient(gomock.Any(), &packRepo.GetPackagesByClientInput{
			ClientName: s.testClientName,
		}).
		Return(&packRepo.GetPackagesByClientOutput{
			Packages: []*models.Package{
				{ID: "pkg-done", Size: 5, Used: 5, Owner: models.SingleOwner(s.testClientName)},
				{ID: "pkg-live", Size: 10, Used: 2, Owner: models.SharedOwner([]string{s.testClientName, "Bo"})},
			},
		}, nil)

	output, err := s.rosterSvc.DeleteClient(s.ctx, &DeleteClientInput{
		ClientName: s.testClientName,
		Confirmed:  true,
	})

	s.Require().Error(err)
	s.Equal(ErrClientHasActivePackages, err)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestDeleteClient_Unconfirmed() {
	output, err := s.rosterSvc.DeleteClient(s.ctx, &DeleteClientInput{
		ClientName: s.testClientName,
	})

	s.Require().Error(err)
	s.Equal(ErrConfirmationRequired, err)
	s.Nil(output)
}

// The sweep removes Ana's sole-owned package and her bookings, leaves the
// shared package with Bo, and reindexes it so its used count drops with her
// swept sessions.
func (s *RosterServiceTestSuite) TestDeleteClient_SweepWithSharedReindex() {
	solePackage := &models.Package{
		ID:    "pkg-sole",
		Size:  5,
		Used:  5,
		Owner: models.SingleOwner(s.testClientName),
	}
	sharedPackage := &models.Package{
		ID:    "pkg-shared",
		Size:  10,
		Used:  10,
		Owner: models.SharedOwner([]string{s.testClientName, "Bo"}),
	}

	s.mockPackageRepo.EXPECT().
		GetPackagesByClient(gomock.Any(), &packRepo.GetPackagesByClientInput{
			ClientName: s.testClientName,
		}).
		Return(&packRepo.GetPackagesByClientOutput{
			Packages: []*models.Package{solePackage, sharedPackage},
		}, nil)

	s.mockPackageRepo.EXPECT().
		DeletePackage(gomock.Any(), &packRepo.DeletePackageInput{PackageID: "pkg-sole"}).
		Return(nil)

	s.mockBookingRepo.EXPECT().
		GetBookingsByClient(gomock.Any(), &bookingRepo.GetBookingsByClientInput{
			ClientName: s.testClientName,
		}).
		Return(&bookingRepo.GetBookingsByClientOutput{
			Bookings: []*models.Booking{
				{ID: "bk-1", ClientName: s.testClientName, PackageID: "pkg-sole"},
				{ID: "bk-2", ClientName: s.testClientName, PackageID: "pkg-shared"},
			},
		}, nil)

	s.mockBookingRepo.EXPECT().
		DeleteBooking(gomock.Any(), &bookingRepo.DeleteBookingInput{BookingID: "bk-1"}).
		Return(nil)
	s.mockBookingRepo.EXPECT().
		DeleteBooking(gomock.Any(), &bookingRepo.DeleteBookingInput{BookingID: "bk-2"}).
		Return(nil)

	// Only the surviving shared package is reindexed
	s.mockScheduler.EXPECT().
		ReindexPackage(gomock.Any(), &scheduling.ReindexPackageInput{PackageID: "pkg-shared"}).
		Return(&scheduling.ReindexPackageOutput{Used: 9}, nil)

	output, err := s.rosterSvc.DeleteClient(s.ctx, &DeleteClientInput{
		ClientName: s.testClientName,
		Confirmed:  true,
	})

	s.Require().NoError(err)
	s.Equal(1, output.PackagesDeleted)
	s.Equal(2, output.BookingsDeleted)
}

func (s *RosterServiceTestSuite) TestDeleteClient_SharedSecondaryKeepsPackage() {
	// Ana is a secondary member; the shared package belongs to Bo's row and
	// must not be deleted with her
	shared := &models.Package{
		ID:    "pkg-shared",
		Size:  10,
		Used:  10,
		Owner: models.SharedOwner([]string{"Bo", s.testClientName}),
	}

	s.mockPackageRepo.EXPECT().
		GetPackagesByClient(gomock.Any(), &packRepo.GetPackagesByClientInput{
			ClientName: s.testClientName,
		}).
		Return(&packRepo.GetPackagesByClientOutput{
			Packages: []*models.Package{shared},
		}, nil)

	s.mockBookingRepo.EXPECT().
		GetBookingsByClient(gomock.Any(), &bookingRepo.GetBookingsByClientInput{
			ClientName: s.testClientName,
		}).
		Return(&bookingRepo.GetBookingsByClientOutput{Bookings: nil}, nil)

	output, err := s.rosterSvc.DeleteClient(s.ctx, &DeleteClientInput{
		ClientName: s.testClientName,
		Confirmed:  true,
	})

	s.Require().NoError(err)
	s.Equal(0, output.PackagesDeleted)
	s.Equal(0, output.BookingsDeleted)
}

func (s *RosterServiceTestSuite) TestListClients_PanelOrderAndFlags() {
	anasOld := &models.Package{
		ID:       "pkg-1",
		Size:     5,
		Used:     5,
		AddedISO: "2024-01-01",
		Owner:    models.SingleOwner("Ana"),
	}
	sharedBoCy := &models.Package{
		ID:       "pkg-2",
		Size:     10,
		Used:     3,
		AddedISO: "2024-02-01",
		Owner:    models.SharedOwner([]string{"Bo", "Cy"}),
	}
	anasNew := &models.Package{
		ID:       "pkg-3",
		Size:     10,
		Used:     0,
		AddedISO: "2024-03-01",
		Owner:    models.SingleOwner("Ana"),
	}

	// Returned out of order; the panel sorts by purchase date
	s.mockPackageRepo.EXPECT().
		ListPackages(gomock.Any(), &packRepo.ListPackagesInput{}).
		Return(&packRepo.ListPackagesOutput{
			Packages: []*models.Package{anasNew, sharedBoCy, anasOld},
		}, nil)

	output, err := s.rosterSvc.ListClients(s.ctx, &ListClientsInput{})

	s.Require().NoError(err)
	s.Require().Len(output.Clients, 3)

	ana := output.Clients[0]
	s.Equal("Ana", ana.Name)
	s.Require().Len(ana.Packages, 2)
	s.Equal("pkg-1", ana.Packages[0].ID)
	s.Equal("pkg-3", ana.Packages[1].ID)
	s.Require().NotNil(ana.Active)
	s.Equal("pkg-3", ana.Active.ID)
	s.False(ana.SharedSecondary)

	bo := output.Clients[1]
	s.Equal("Bo", bo.Name)
	s.Require().NotNil(bo.Active)
	s.Equal("pkg-2", bo.Active.ID)
	s.False(bo.SharedSecondary)

	cy := output.Clients[2]
	s.Equal("Cy", cy.Name)
	s.True(cy.SharedSecondary)
}

func (s *RosterServiceTestSuite) TestListClients_Empty() {
	s.mockPackageRepo.EXPECT().
		ListPackages(gomock.Any(), &packRepo.ListPackagesInput{}).
		Return(&packRepo.ListPackagesOutput{Packages: nil}, nil)

	output, err := s.rosterSvc.ListClients(s.ctx, &ListClientsInput{})

	s.Require().NoError(err)
	s.Empty(output.Clients)
}

func (s *RosterServiceTestSuite) TestGetPackageSessions_FiltersByClient() {
	shared := &models.Package{
		ID:    s.testPackageID,
		Size:  10,
		Used:  3,
		Owner: models.SharedOwner([]string{"Ana", "Bo"}),
	}

	s.mockPackageRepo.EXPECT().
		GetPackage(gomock.Any(), &packRepo.GetPackageInput{PackageID: s.testPackageID}).
		Return(shared, nil)

	s.mockBookingRepo.EXPECT().
		GetBookingsByPackage(gomock.Any(), &bookingRepo.GetBookingsByPackageInput{
			PackageID: s.testPackageID,
		}).
		Return(&bookingRepo.GetBookingsByPackageOutput{
			Bookings: []*models.Booking{
				{ID: "bk-3", ClientName: "Ana", DateISO: "2024-06-07", Hour: 9, SessionNumber: 3},
				{ID: "bk-1", ClientName: "Ana", DateISO: "2024-06-03", Hour: 9, SessionNumber: 1},
				{ID: "bk-2", ClientName: "Bo", DateISO: "2024-06-04", Hour: 9, SessionNumber: 2},
			},
		}, nil)

	output, err := s.rosterSvc.GetPackageSessions(s.ctx, &GetPackageSessionsInput{
		PackageID:  s.testPackageID,
		ClientName: "Ana",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Bookings, 2)
	s.Equal("bk-1", output.Bookings[0].ID)
	s.Equal("bk-3", output.Bookings[1].ID)
	s.Equal(s.testPackageID, output.Package.ID)
}

func (s *RosterServiceTestSuite) TestGetPackageSessions_NotFound() {
	s.mockPackageRepo.EXPECT().
		GetPackage(gomock.Any(), &packRepo.GetPackageInput{PackageID: "missing"}).
		Return(nil, packRepo.ErrPackageNotFound)

	output, err := s.rosterSvc.GetPackageSessions(s.ctx, &GetPackageSessionsInput{
		PackageID: "missing",
	})

	s.Require().Error(err)
	s.Equal(ErrPackageNotFound, err)
	s.Nil(output)
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
