package services

// ServiceContainer bundles the service facades handed to route
// registration, so handler wiring takes one dependency instead of six.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Account   AccountSvcFacade
	Currency  CurrencySvcFacade
	Journal   JournalSvcFacade
	Reporting ReportingSvcFacade
}
