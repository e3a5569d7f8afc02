// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

/*
Package testutil provides shared helpers for flownet tests.

Core helpers:

  - Context helpers: TestContext / TestContextWithTimeout / CancelledContext,
    cancellation is registered with t.Cleanup to avoid leaks
  - Data helpers: MustJSON / MustParseJSON for compact test data construction
  - Async helpers: AssertEventuallyTrue for polling a condition with timeout

Subpackages:

  - testutil/fixtures: ready-made workflow networks (linear pipelines,
    conditional routers, failing and counting nodes) for test suites
*/
package testutil
