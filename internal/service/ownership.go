package service

import "sync"

// ownershipCheck is one independent ownership read: it confirms that an
// entity id supplied by the caller belongs to the requesting user, and
// returns the entity's NotFound sentinel otherwise.
type ownershipCheck func() error

// validateOwnership runs the given checks together. They are independent
// reads, so they run concurrently; all must complete and all must succeed
// before the caller may mutate anything. The first failure is returned.
func validateOwnership(checks ...ownershipCheck) error {
	if len(checks) == 1 {
		return checks[0]()
	}

	errs := make([]error, len(checks))
	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func(i int, check ownershipCheck) {
			defer wg.Done()
			errs[i] = check()
		}(i, check)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
