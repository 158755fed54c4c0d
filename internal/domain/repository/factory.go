package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Employers() EmployerRepository
	Helpers() HelperRepository
	Contracts() ContractRepository
}
