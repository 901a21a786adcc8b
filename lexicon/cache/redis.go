// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	defaultRedisPort = 6379
)

type Redis struct {
	conf        *Conf
	redisClient *redis.Client
}

func (rc *Redis) createCacheID(q Query) string {
	return fmt.Sprintf("termsynth:lexicon:%x", q.ID())
}

func (rc *Redis) Get(ctx context.Context, q Query) (Entry, error) {
	cacheID := rc.createCacheID(q)
	val, err := rc.redisClient.Get(ctx, cacheID).Bytes()
	if err == redis.Nil {
		return Entry{}, ErrCacheMiss

	} else if err != nil {
		return Entry{}, fmt.Errorf("lexicon cache access error: %w", err)
	}
	var ans Entry
	if err := gob.NewDecoder(bytes.NewReader(val)).Decode(&ans); err != nil {
		return Entry{}, fmt.Errorf("lexicon cache access error: %w", err)
	}
	return ans, nil
}

func (rc *Redis) Set(ctx context.Context, q Query, value Entry) error {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(&value); err != nil {
		return err
	}
	cacheID := rc.createCacheID(q)
	_, err := rc.redisClient.Set(
		ctx, cacheID, buffer.Bytes(), time.Duration(rc.conf.TTLSecs)*time.Second).Result()
	if err != nil {
		return fmt.Errorf("lexicon cache access error: %w", err)
	}
	return nil
}

func NewRedis(conf *Conf) *Redis {
	addr := conf.RedisAddr
	if len(strings.Split(addr, ":")) == 1 {
		addr = fmt.Sprintf("%s:%d", addr, defaultRedisPort)
		log.Warn().Msgf("Lexicon cache: Redis port not specified, using %d", defaultRedisPort)
	}
	return &Redis{
		conf: conf,
		redisClient: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   conf.RedisDB,
		}),
	}
}
