// Package optimiser estimates how long a BEAST job will run under each
// available BEAGLE acceleration option and ranks the options.
//
// # Estimation
//
// Estimator launches beast on the job in a throwaway working directory and
// reads its console output until the state table prints an
// "hours/million states" (or "hours/billion states") figure. beast is killed
// as soon as that figure appears; the estimate is the rate multiplied by the
// chainLength configured in the job.
//
// # Sweeps
//
// Sweep runs the estimator once per option from optimiser/beagle. An option
// whose estimate fails is recorded as a failed Outcome and ranked after every
// successful one; it does not abort the sweep.
//
// Everything beast prints, plus each launched command line, is copied to an
// audit writer so a failed run can be diagnosed afterwards.
package optimiser
