/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cvm

import "go.uber.org/zap"

// testerOptions holds optional parameters for Tester construction.
type testerOptions struct {
	logger *zap.Logger
	strict bool
}

// Option is a functional option for configuring a Tester.
type Option func(*testerOptions)

// WithLogger sets the logger used for per-comparison debug records. A nil logger
// disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *testerOptions) {
		opts.logger = logger
	}
}

// WithStrictTableRange makes Compare fail with ErrOutOfTableRange when the statistic
// reaches the end of the limiting-distribution table, instead of reporting a p-value
// of 0.
func WithStrictTableRange() Option {
	return func(opts *testerOptions) {
		opts.strict = true
	}
}

func newTesterOptions(opts []Option) *testerOptions {
	options := &testerOptions{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = zap.NewNop()
	}
	return options
}
