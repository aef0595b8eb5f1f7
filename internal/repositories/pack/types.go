package pack

import "trainbook/internal/models"

type SavePackageInput struct {
	Package *models.Package
}

type GetPackageInput struct {
	PackageID string
}

type ListPackagesInput struct {
}

type ListPackagesOutput struct {
	Packages []*models.Package
}

type GetPackagesByClientInput struct {
	ClientName string
}

type GetPackagesByClientOutput struct {
	Packages []*models.Package
}

type UpdateUsedInput struct {
	PackageID string
	Used      int
}

type DeletePackageInput struct {
	PackageID string
}

type SubscribeInput struct {
	// OnChange receives the full collection after every mutation, and once
	// on subscription with the current contents
	OnChange func(packages []*models.Package)
}
